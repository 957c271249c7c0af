// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators enforces request-level business rules before a request
// reaches the packaging pipeline.
//
// A [Validator] checks an arbitrary value and can be scoped to a subset of
// named fields. Structural checks that the pipeline cannot run without
// (template variant shape, domain syntax, UTF-8 content) stay with the
// pipeline; this package covers limits and consistency rules of the API.
package validators

import "context"

// Validator validates the provided input and optionally restricts
// validation to specific named fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
