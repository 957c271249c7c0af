// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package protection

import "errors"

// ErrInvalidTuning is returned when a timing or threshold knob is not
// positive.
var ErrInvalidTuning = errors.New("invalid protection tuning")
