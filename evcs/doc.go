/*
 * Copyright (c) 2018 XLAB d.o.o
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package evcs implements extended visual cryptography schemes.
//
// A scheme splits a binary secret image into n colour shadow images,
// one per participant. Every participant also supplies a binary cover
// image which their shadow resembles when viewed alone. Stacking the
// shadows of a qualified set of participants reveals the secret, while
// the shadows of a forbidden set carry no information about it.
//
// Every source pixel is expanded into a block of m sub-pixels in each
// shadow: a secret block of SecretEncoder.Width() sub-pixels followed by
// a cover block of CoverEncoder.Width() sub-pixels. Encoders are
// strategies; the scheme selected by Params.Alphabet decides which pair
// of encoders is used and which StackRule models overlaying shadows.
//
// The general scheme (AlphabetBasis) supports any (k,n) threshold. It
// packs the basis columns of package access into RGB sub-pixels, three
// columns per sub-pixel, and embeds covers with one of three marker
// colours per participant. The remaining alphabets are the simpler
// two-out-of-n constructions with fixed colour palettes.
//
// Example:
//
//	scheme, err := evcs.NewScheme(&evcs.Params{K: 3, N: 4, CoverRepetition: 3})
//	if err != nil {
//		// handle error
//	}
//	shadows, err := scheme.Share(secret, covers)
//	if err != nil {
//		// handle error
//	}
//	stacked, err := scheme.Stack(shadows[0], shadows[1], shadows[2])
package evcs
