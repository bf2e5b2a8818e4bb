package quote

import "errors"

var (
	ErrUnknownServiceType   = errors.New("unknown service type")
	ErrServiceUnavailable   = errors.New("service type not available yet")
	ErrUnsupportedCommand   = errors.New("command not supported by this service type")
	ErrUnknownCarPart       = errors.New("unknown car part")
	ErrCarPartNotOffered    = errors.New("car part not offered for this service type")
	ErrCarPartNotSelected   = errors.New("car part not selected")
	ErrUnknownService       = errors.New("unknown optional service")
	ErrUnknownRemovablePart = errors.New("unknown removable part for car part")
	ErrUnknownExtraService  = errors.New("unknown extra service")
	ErrInvalidPrice         = errors.New("invalid price")
)
