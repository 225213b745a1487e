/*
 * Copyright (c) 2018 XLAB d.o.o
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package evcs

import (
	"github.com/fentec-project/govcs/access"
	"github.com/pkg/errors"
)

// ErrInvalidAccessStructure is returned when the threshold is out of
// range or not supported by the selected alphabet.
var ErrInvalidAccessStructure = access.ErrInvalidStructure

// ErrMismatchedCoverCount is returned when the number of covers differs
// from the number of participants.
var ErrMismatchedCoverCount = errors.New("number of covers does not match number of participants")

// ErrDimensionMismatch is returned when images that should share their
// dimensions do not.
var ErrDimensionMismatch = errors.New("image dimensions do not match")

// ErrUnknownAlphabet is returned for an alphabet that names no scheme.
var ErrUnknownAlphabet = errors.New("unknown alphabet")

// ErrInvalidParams is returned for parameters out of range.
var ErrInvalidParams = errors.New("invalid parameters")

// ErrNoShadows is returned when stacking an empty set of shadows.
var ErrNoShadows = errors.New("no shadows to stack")
