// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package hash

import "testing"

func Test_Hash_01(t *testing.T) {
	// Nearby words spread apart.
	seen := make(map[uint64]uint64)
	//
	for i := uint64(0); i < 1000; i++ {
		h := Uint64(i)
		//
		if prev, ok := seen[h]; ok {
			t.Fatalf("words %d and %d collide", prev, i)
		}
		//
		seen[h] = i
	}
}

func Test_Hash_02(t *testing.T) {
	// Word sequences are order sensitive.
	if Words([]uint64{1, 2}) == Words([]uint64{2, 1}) {
		t.Errorf("word order ignored")
	}
	//
	if Words(nil) != Words([]uint64{}) {
		t.Errorf("empty sequences hash apart")
	}
}
