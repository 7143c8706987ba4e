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

// Package core defines the domain model for the catalog search engine.
//
// It contains two families of types:
//   - Raw catalog documents (RawInstitute, RawProgramme, RawCourse) as they
//     arrive from the document store. Fields are optional-tolerant because
//     upstream data is scraped and unevenly filled.
//   - Materialized records (Institute, Programme, Course) produced by the
//     engine's build step: flattened, slugged, cross-referenced views that
//     all query operations are answered from.
//
// The package also provides the text utilities shared by both sides:
// slug derivation, fee formatting and description extraction.
package core
