package commands

import (
	"shelter-scheduler/internal/infra"
)

// notFoundAs replaces a repository not-found error with a domain sentinel.
func notFoundAs(err error, sentinel error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return sentinel
	}
	return err
}
