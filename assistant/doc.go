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


// Package assistant composes the intake conversation: it merges extracted
// profile data into the session, asks for whatever required fields are
// still missing, and once the profile is complete runs the full pipeline
// of municipality matching, heuristic prefiltering, model ranking and
// corpus retrieval.
//
// A turn is either intake (a follow-up question, no schemes) or results
// (a ranked short-list with sources). Two situations soften rather than
// fail: an unknown municipality yields fuzzy suggestions instead of an
// error, and a retrieval outage drops the sources while keeping the
// ranked answer.
package assistant
