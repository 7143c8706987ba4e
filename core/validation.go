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

import (
	"fmt"
	"strings"
)

// ValidateInstitute validates a RawInstitute according to domain rules.
//
// Validation rules:
//   - Name must not be empty
//
// NOT validated (the build step skips bad sub-entities instead of failing):
//   - Programmes without a name
//   - Courses without a degree
//   - Id (0 is valid, the seeder assigns a content-based one)
func ValidateInstitute(doc *RawInstitute) error {
	if doc == nil {
		return fmt.Errorf("%w: document is nil", ErrInvalidInstitute)
	}

	if strings.TrimSpace(doc.Name) == "" {
		return fmt.Errorf("%w: %w", ErrInvalidInstitute, ErrEmptyName)
	}

	return nil
}

// ValidateProgramme reports whether a programme carries enough data to index.
func ValidateProgramme(p *RawProgramme) error {
	if p == nil || strings.TrimSpace(p.Name) == "" {
		return ErrEmptyProgrammeName
	}
	return nil
}

// ValidateCourse reports whether a course carries enough data to index.
func ValidateCourse(c *RawCourse) error {
	if c == nil || strings.TrimSpace(c.Degree) == "" {
		return ErrEmptyDegree
	}
	return nil
}
