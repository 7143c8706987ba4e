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

// Package search implements the catalog search engine.
//
// The Engine bulk-loads raw institute documents from the document store
// once, materializes them into three flat collections (institutes,
// programmes, courses) plus suggestion tries and an inverted facet index,
// and then answers every query from memory:
//
//   - Suggest: trie-backed autocomplete with a keyword-taxonomy fallback
//   - Search: keyword/filtered search across all three entity levels
//   - Explore: faceted institute listings with counts and sorting
//   - Institute: denormalized detail lookup by slug
//   - Stats: index introspection
//
// A build produces an immutable snapshot that is swapped in atomically;
// queries never observe a partially built index.
package search
