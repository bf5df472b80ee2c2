package main

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	dnderr "github.com/unitedfantasytoolkit/basic-adventure-gaming-system-sub000/internal/errors"
)

// Exit statuses by error code
const (
	exitFailure  = 1
	exitRejected = 2
	exitNotFound = 3
	exitConfig   = 4
	exitInternal = 5
)

func exitCode(err error) int {
	switch {
	case dnderr.IsInvalidArgument(err), dnderr.IsValidation(err):
		return exitRejected
	case dnderr.IsNotFound(err):
		return exitNotFound
	case dnderr.IsConfiguration(err):
		return exitConfig
	case dnderr.IsInternal(err):
		return exitInternal
	default:
		return exitFailure
	}
}

// failureDetail renders the error's code and metadata, e.g.
// " [validation actor_id=hero action_id=smite]"
func failureDetail(err error) string {
	parts := []string{string(dnderr.GetCode(err))}
	meta := dnderr.GetMeta(err)
	for _, key := range slices.Sorted(maps.Keys(meta)) {
		parts = append(parts, fmt.Sprintf("%s=%v", key, meta[key]))
	}
	return " [" + strings.Join(parts, " ") + "]"
}
