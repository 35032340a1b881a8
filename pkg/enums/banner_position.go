package enums

import "fmt"

// BannerPosition identifies where a promotional banner renders.
type BannerPosition string

const (
	BannerPositionTop     BannerPosition = "top"
	BannerPositionBanner  BannerPosition = "banner"
	BannerPositionSidebar BannerPosition = "sidebar"
)

var validBannerPositions = []BannerPosition{
	BannerPositionTop,
	BannerPositionBanner,
	BannerPositionSidebar,
}

// String implements fmt.Stringer.
func (p BannerPosition) String() string {
	return string(p)
}

// IsValid reports whether the value is a known BannerPosition.
func (p BannerPosition) IsValid() bool {
	for _, candidate := range validBannerPositions {
		if candidate == p {
			return true
		}
	}
	return false
}

// ParseBannerPosition converts raw input into a BannerPosition.
func ParseBannerPosition(value string) (BannerPosition, error) {
	for _, candidate := range validBannerPositions {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid banner position %q", value)
}
