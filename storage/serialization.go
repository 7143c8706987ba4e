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

package storage

import (
	"github.com/mus-format/mus-go/varint"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/campusgrid/campusgrid/core"
)

// MarshalID serializes an ID to bytes for use in store keys.
func MarshalID(id core.ID) []byte {
	buf := make([]byte, varint.Uint64.Size(uint64(id)))
	varint.Uint64.Marshal(uint64(id), buf)
	return buf
}

// UnmarshalID deserializes an ID from bytes.
func UnmarshalID(data []byte) (core.ID, error) {
	v, _, err := varint.Uint64.Unmarshal(data)
	return core.ID(v), err
}

// MarshalInstitute serializes a raw institute document to bytes.
func MarshalInstitute(doc *core.RawInstitute) ([]byte, error) {
	return msgpack.Marshal(doc)
}

// UnmarshalInstitute deserializes a raw institute document from bytes.
func UnmarshalInstitute(data []byte) (*core.RawInstitute, error) {
	var doc core.RawInstitute
	if err := msgpack.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}
