// Copyright 2026 Amazon.com, Inc. or its affiliates. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License"). You may not
// use this file except in compliance with the License. A copy of the
// License is located at
//
// http://aws.amazon.com/apache2.0/
//
// or in the "license" file accompanying this file. This file is distributed
// on an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND,
// either express or implied. See the License for the specific language governing
// permissions and limitations under the License.

// Package codec converts file payloads to and from their protocol form.
// Payloads travel as standard padded base64 so they never contain a space.
package codec

import (
	"encoding/base64"
	"fmt"
)

// Encode returns the protocol form of data.
func Encode(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}

// Decode reverses Encode. Payloads sent without padding are accepted too.
func Decode(payload string) ([]byte, error) {
	encoding := base64.StdEncoding
	if len(payload)%4 != 0 {
		encoding = base64.RawStdEncoding
	}
	data, err := encoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("invalid payload encoding: %v", err)
	}
	return data, nil
}
