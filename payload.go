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

import "hash"

const preamble = "hawk.1.payload\n"

// PayloadHasher incrementally computes the Hawk payload hash of a request or
// response body. Feed the entity body with Update or Write, then pass the
// Finish result to whatever is building or checking the `hash` attribute.
//
// The byte sequence fed to the digest is:
//
//	hawk.1.payload\n<content-type>\n<payload>\n
//
// A hasher is single use and is not safe for concurrent use; hash concurrent
// payloads with one hasher each.
type PayloadHasher struct {
	ctx       hash.Hash
	algorithm Algorithm
}

// New creates a payload hasher bound to the given content type and digest
// algorithm. The content type must already be lower-case and must not
// include parameters (eg: charset); it is hashed verbatim. The algorithm is
// assumed to match the one tied to the credentials the hash will travel
// with.
func New(contentType string, algorithm Algorithm) *PayloadHasher {
	h := &PayloadHasher{
		ctx:       algorithm.New(),
		algorithm: algorithm,
	}
	h.Update([]byte(preamble))
	h.Update([]byte(contentType))
	h.Update([]byte{'\n'})
	return h
}

// Hash computes the payload hash of a single body held in memory. It is
// equivalent to New followed by one Update and Finish.
func Hash(contentType string, algorithm Algorithm, payload []byte) []byte {
	h := New(contentType, algorithm)
	h.Update(payload)
	return h.Finish()
}

// Update adds body bytes to the hash, in call order. Chunk boundaries do not
// affect the result. Update panics if the hasher has already been finished.
func (h *PayloadHasher) Update(data []byte) {
	if h.ctx == nil {
		panic("hawkhash: use of finished PayloadHasher")
	}
	_, _ = h.ctx.Write(data)
}

// Write implements io.Writer so a body can be streamed in with io.Copy or
// io.TeeReader. It is identical in effect to Update and never returns an
// error.
func (h *PayloadHasher) Write(p []byte) (int, error) {
	h.Update(p)
	return len(p), nil
}

// Finish finalises the hash and returns the raw digest, sized to the
// algorithm. Raw bytes are returned; encoding them for a header (eg: base64)
// is left to the caller.
//
// Note that this appends a newline to the payload, as does the JS Hawk
// implementation. The hasher is consumed: any later Update, Write or Finish
// panics.
func (h *PayloadHasher) Finish() []byte {
	h.Update([]byte{'\n'})
	digest := h.ctx.Sum(nil)
	h.ctx = nil
	return digest[:h.algorithm.Size()]
}
