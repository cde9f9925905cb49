package usecasecontract

import "time"

// IConfigProvider exposes the configuration values consumed outside main.
type IConfigProvider interface {
	GetJWTExpiry() time.Duration
	GetListCacheTTL() time.Duration
	GetRequestTimeout() time.Duration
}
