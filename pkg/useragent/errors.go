package useragent

import "errors"

var (
	ErrEmptyUserAgent = errors.New("empty user agent string")
	ErrUnknownVendor  = errors.New("user agent does not identify a known vendor")
)
