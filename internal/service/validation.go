package service

import (
	"fmt"
	"strings"

	"github.com/mikud-go/mikud/models"
)

// ZipLength is the number of digits of an Israeli zip code.
const ZipLength = 7

// validateMikudQuery requires city, street and house number, or a post
// office box. A city or street given by name or by id is enough.
func validateMikudQuery(q models.MikudQuery) error {
	if q.POB != 0 {
		return nil
	}
	if q.HasCity() && q.HasStreet() && q.HouseNumber != 0 {
		return nil
	}
	return fmt.Errorf("%w: specify city, street and house number, or a post office box", ErrInvalidArgument)
}

// normalizeZip trims zip and checks that it is exactly ZipLength ASCII
// digits.
func normalizeZip(zip string) (string, error) {
	zip = strings.TrimSpace(zip)
	if len(zip) != ZipLength {
		return "", fmt.Errorf("%w: zip code must be %d digits, got %q", ErrInvalidArgument, ZipLength, zip)
	}
	for _, r := range zip {
		if r < '0' || r > '9' {
			return "", fmt.Errorf("%w: zip code must be %d digits, got %q", ErrInvalidArgument, ZipLength, zip)
		}
	}
	return zip, nil
}
