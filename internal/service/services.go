package service

import (
	"github.com/mikud-go/mikud/internal/adapter"
	"github.com/mikud-go/mikud/internal/logger"
	"github.com/mikud-go/mikud/internal/store"
	"github.com/mikud-go/mikud/models"
)

type ClientServices struct {
	TokenService TokenService
	MikudService MikudService
}

func NewClientServices(storages *store.ClientStorages, api adapter.PostAPI, creds models.Credentials, logger *logger.Logger) *ClientServices {
	tokenSvc := NewTokenService(storages.TokenStore, api, creds, logger)

	return &ClientServices{
		TokenService: tokenSvc,
		MikudService: NewMikudService(api, tokenSvc, logger),
	}
}
