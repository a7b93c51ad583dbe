package ports

import "time"

// Clock supplies the current time of a build session.
//
//go:generate go run go.uber.org/mock/mockgen -source=clock.go -destination=mocks/mock_clock.go -package=mocks
type Clock interface {
	// Now returns the current session time.
	Now() time.Time
}
