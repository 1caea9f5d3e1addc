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


// Package storage defines the persistence interfaces for intake sessions
// and the binary serialization helpers shared by backends.
//
// Session records persist across process restarts so that a returning
// user continues the intake where they left off. Records are serialized
// with MUS, a compact binary format whose serializers are generated from
// the core types (see the go:generate directive in the core package).
//
// The badger subpackage provides the embedded BadgerDB implementation.
package storage
