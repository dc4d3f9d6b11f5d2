// BSD 3-Clause License

// Copyright (c) 2021, James Bowes
// Copyright (c) 2023, Alexander Taraymovich, OffBlocks
// All rights reserved.

// Redistribution and use in source and binary forms, with or without
// modification, are permitted provided that the following conditions are met:

// 1. Redistributions of source code must retain the above copyright notice, this
//    list of conditions and the following disclaimer.

// 2. Redistributions in binary form must reproduce the above copyright notice,
//    this list of conditions and the following disclaimer in the documentation
//    and/or other materials provided with the distribution.

// 3. Neither the name of the copyright holder nor the names of its
//    contributors may be used to endorse or promote products derived from
//    this software without specific prior written permission.

// THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
// AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
// IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
// DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
// FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
// DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
// SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
// CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
// OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
// OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

package hawkhash

import (
	"crypto/sha256"
	"crypto/sha512"
	"hash"
)

// Algorithm describes the digest primitive used for payload hashing.
// The package-level SHA256, SHA384 and SHA512 descriptors cover the
// algorithms Hawk credentials name; any other implementation producing a
// hash.Hash can be supplied without touching the canonicalisation logic.
type Algorithm interface {
	// New returns a fresh incremental hash context.
	New() hash.Hash

	// Size returns the length of the digest in bytes.
	Size() int

	// String returns the algorithm identifier as it appears in the
	// `algorithm` field of Hawk credentials.
	String() string
}

// Built-in algorithm descriptors. Descriptors are immutable and may be
// shared freely across goroutines.
var (
	SHA256 Algorithm = &algorithm{"sha256", sha256.Size, sha256.New}
	SHA384 Algorithm = &algorithm{"sha384", sha512.Size384, sha512.New384}
	SHA512 Algorithm = &algorithm{"sha512", sha512.Size, sha512.New}
)

type algorithm struct {
	name   string
	size   int
	newCtx func() hash.Hash
}

func (a *algorithm) New() hash.Hash { return a.newCtx() }
func (a *algorithm) Size() int      { return a.size }
func (a *algorithm) String() string { return a.name }
