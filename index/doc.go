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

// Package index provides the in-memory index structures of the engine:
// a suggestion trie that accumulates capped candidate lists at every
// prefix, and an inverted facet index mapping normalized tokens to
// institute id sets with intersection/union set algebra.
//
// Both structures are write-once: the build step populates them and all
// query-time access is read-only, so none of them carry locks.
package index
