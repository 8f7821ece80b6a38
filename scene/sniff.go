// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/h2non/filetype"
	"github.com/h2non/filetype/types"
)

// FileType is the [filetype] type of scene documents. It is matched by
// [IsSceneContent], so [filetype.Match] recognizes scene documents.
var FileType = filetype.NewType("scene", "application/vnd.phasereditor.scene+json")

func init() {
	filetype.AddMatcher(FileType, IsSceneContent)
}

// IsSceneContent returns whether the given bytes start a scene document:
// a JSON object whose "-app" value begins with [AppPrefix]. The object
// may be truncated after that value, so the head of a file is enough.
func IsSceneContent(b []byte) bool {
	dec := json.NewDecoder(bytes.NewReader(b))
	if tok, err := dec.Token(); err != nil || tok != json.Delim('{') {
		return false
	}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return false
		}
		if key, _ := tok.(string); key == KeyApp {
			var app string
			if err := dec.Decode(&app); err != nil {
				return false
			}
			return strings.HasPrefix(app, AppPrefix)
		}
		var skip json.RawMessage
		if err := dec.Decode(&skip); err != nil {
			return false
		}
	}
	return false
}

// IsSceneType returns whether the given type is the scene [FileType].
func IsSceneType(t types.Type) bool {
	return t == FileType
}
