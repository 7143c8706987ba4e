// Copyright 2025 Campusgrid Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package core

import "errors"

// Domain validation errors
var (
	// ErrInvalidInstitute indicates a RawInstitute failed validation.
	ErrInvalidInstitute = errors.New("invalid institute document")

	// ErrEmptyName indicates the institute Name field is empty.
	ErrEmptyName = errors.New("institute name cannot be empty")

	// ErrEmptyProgrammeName indicates a programme has no name.
	ErrEmptyProgrammeName = errors.New("programme name cannot be empty")

	// ErrEmptyDegree indicates a course has no degree name.
	ErrEmptyDegree = errors.New("course degree cannot be empty")
)
