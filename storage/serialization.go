// Copyright 2026 Steunwijzer Authors
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
	"github.com/steunwijzer/steunwijzer/core"
)

// MarshalSessionRecord serializes a SessionRecord to bytes.
func MarshalSessionRecord(record *core.SessionRecord) []byte {
	buf := make([]byte, core.SessionRecordMUS.Size(*record))
	core.SessionRecordMUS.Marshal(*record, buf)
	return buf
}

// UnmarshalSessionRecord deserializes a SessionRecord from bytes.
func UnmarshalSessionRecord(data []byte) (*core.SessionRecord, error) {
	record, _, err := core.SessionRecordMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &record, nil
}
