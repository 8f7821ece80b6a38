// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/fs"
	"log/slog"
	"maps"
	"math"
	"slices"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/hack-pad/hackpadfs"

	"cogentcore.org/scene/base/fsx"
)

const (
	// AppPrefix starts the "-app" signature of every scene document.
	AppPrefix = "Phaser Editor - Scene Editor"

	// AppVersion is the version written in the "-app" signature.
	AppVersion = "2.0.0"

	// FormatVersion is the current "-version" of scene documents.
	FormatVersion = 1

	// Ext is the file extension of scene documents.
	Ext = ".scene"
)

// Document keys.
const (
	KeyApp            = "-app"
	KeyVersion        = "-version"
	KeyRoot           = "root"
	KeySnapEnabled    = "snapEnabled"
	KeySnapWidth      = "snapWidth"
	KeySnapHeight     = "snapHeight"
	KeyCompilerLang   = "compilerLang"
	KeySceneKey       = "sceneKey"
	KeySuperClass     = "superClass"
	KeyAutoLoadAssets = "autoLoadAssets"
	KeyUserCode       = "userCode"
)

// Lifecycle method names used as user code keys.
const (
	MethodPreload = "preload"
	MethodCreate  = "create"
)

// MethodUserCode is the code a developer wrote to run before and after
// the generated statements of one lifecycle method. It is stored in
// the scene document and spliced verbatim into the generated code.
type MethodUserCode struct {
	Before string `json:"before"`
	After  string `json:"after"`
}

// IsEmpty returns whether both blocks are empty.
func (u *MethodUserCode) IsEmpty() bool {
	return u == nil || (u.Before == "" && u.After == "")
}

// SceneModel is a scene document: the root of the entity tree plus
// editor and compiler settings. It is not safe for concurrent use.
type SceneModel struct {

	// Root is the root entity, normally a [World]. It is nil when the
	// document has no root.
	Root Entity

	// Snap grid settings of the editor.
	SnapEnabled bool
	SnapWidth   int
	SnapHeight  int

	// CompilerLang is the name of the target language of the compiler,
	// such as "JavaScript". It is kept as written and only checked when
	// compiling.
	CompilerLang string

	// SceneKey is the key passed to the super constructor; when empty no
	// constructor is generated.
	SceneKey string

	// SuperClass is the class the generated scene class extends.
	SuperClass string

	// AutoLoadAssets generates preload calls for the asset packs
	// the scene uses.
	AutoLoadAssets bool

	// UserCode is the developer code for each lifecycle method, keyed by
	// method name.
	UserCode map[string]*MethodUserCode
}

// NewSceneModel returns a new scene model with an empty [World] root
// and default settings.
func NewSceneModel() *SceneModel {
	m := &SceneModel{}
	m.Defaults()
	m.Root = NewWorld()
	return m
}

// Defaults sets all settings to their defaults, without changing the root.
func (m *SceneModel) Defaults() {
	m.SnapEnabled = false
	m.SnapWidth = 16
	m.SnapHeight = 16
	m.CompilerLang = "JavaScript"
	m.SceneKey = ""
	m.SuperClass = "Phaser.Scene"
	m.AutoLoadAssets = true
	m.UserCode = map[string]*MethodUserCode{}
}

// World returns the root as a [World], or nil if it is not one.
func (m *SceneModel) World() *World {
	w, _ := m.Root.(*World)
	return w
}

// MethodCode returns the user code of the given method, adding an
// empty one if there is none.
func (m *SceneModel) MethodCode(method string) *MethodUserCode {
	if m.UserCode == nil {
		m.UserCode = map[string]*MethodUserCode{}
	}
	u := m.UserCode[method]
	if u == nil {
		u = &MethodUserCode{}
		m.UserCode[method] = u
	}
	return u
}

// Signature returns the "-app" signature written to documents.
func Signature() string {
	return AppPrefix + " - " + AppVersion
}

// Write returns the document object of the model.
func (m *SceneModel) Write() Data {
	def := &SceneModel{}
	def.Defaults()
	d := Data{
		KeyApp:     Signature(),
		KeyVersion: FormatVersion,
		KeyRoot:    nil,
	}
	if m.Root != nil {
		d[KeyRoot] = WriteEntity(m.Root)
	}
	putIf(d, KeySnapEnabled, m.SnapEnabled, def.SnapEnabled)
	putIf(d, KeySnapWidth, m.SnapWidth, def.SnapWidth)
	putIf(d, KeySnapHeight, m.SnapHeight, def.SnapHeight)
	putIf(d, KeyCompilerLang, m.CompilerLang, def.CompilerLang)
	putIf(d, KeySceneKey, m.SceneKey, def.SceneKey)
	putIf(d, KeySuperClass, m.SuperClass, def.SuperClass)
	putIf(d, KeyAutoLoadAssets, m.AutoLoadAssets, def.AutoLoadAssets)
	uc := Data{}
	for _, name := range slices.Sorted(maps.Keys(m.UserCode)) {
		u := m.UserCode[name]
		if u.IsEmpty() {
			continue
		}
		uc[name] = Data{"before": u.Before, "after": u.After}
	}
	if len(uc) > 0 {
		d[KeyUserCode] = uc
	}
	return d
}

func putIf[T comparable](d Data, key string, v, def T) {
	if v != def {
		d[key] = v
	}
}

// MarshalJSON returns the JSON encoding of the document.
func (m *SceneModel) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.Write())
}

// Bytes returns the indented JSON encoding of the document,
// as written to scene files.
func (m *SceneModel) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "\t")
	if err := enc.Encode(m.Write()); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Read replaces the content of the model with the given document object.
// The model is only changed if the whole document is read successfully.
func (m *SceneModel) Read(d Data, opts ReadOptions) error {
	checkSignature(d)
	n := &SceneModel{}
	n.Defaults()
	if v, ok := d[KeyRoot]; ok && v != nil {
		rd, ok := v.(Data)
		if !ok {
			return fmt.Errorf("%w: root is not an object", ErrBadAttribute)
		}
		root, err := ReadEntity(rd, opts)
		if err != nil {
			return err
		}
		n.Root = root
	}
	var err error
	readSetting(d, KeySnapEnabled, &n.SnapEnabled, &err)
	readSetting(d, KeySnapWidth, &n.SnapWidth, &err)
	readSetting(d, KeySnapHeight, &n.SnapHeight, &err)
	readSetting(d, KeyCompilerLang, &n.CompilerLang, &err)
	readSetting(d, KeySceneKey, &n.SceneKey, &err)
	readSetting(d, KeySuperClass, &n.SuperClass, &err)
	readSetting(d, KeyAutoLoadAssets, &n.AutoLoadAssets, &err)
	if err != nil {
		return err
	}
	if uc, ok := d[KeyUserCode].(Data); ok {
		for name, v := range uc {
			ud, _ := v.(Data)
			u := n.MethodCode(name)
			u.Before, _ = dataString(ud, "before")
			u.After, _ = dataString(ud, "after")
		}
	}
	*m = *n
	return nil
}

// readSetting sets *v from d[key] if present, recording the first
// type mismatch in *err.
func readSetting[T bool | int | string](d Data, key string, v *T, err *error) {
	raw, ok := d[key]
	if !ok || raw == nil || *err != nil {
		return
	}
	switch p := any(v).(type) {
	case *int:
		if n, ok := number(raw); ok && n == math.Trunc(n) {
			*p = int(n)
			return
		}
	case *bool:
		if b, ok := raw.(bool); ok {
			*p = b
			return
		}
	case *string:
		if s, ok := raw.(string); ok {
			*p = s
			return
		}
	}
	*err = fmt.Errorf("%w: %s: unexpected value %v", ErrBadAttribute, key, raw)
}

// checkSignature logs documents that do not look like they were written
// by a compatible version.
func checkSignature(d Data) {
	app, _ := dataString(d, KeyApp)
	if !strings.HasPrefix(app, AppPrefix) {
		slog.Warn("scene document has no valid signature", "app", app)
		return
	}
	if ver, ok := number(d[KeyVersion]); ok && ver > FormatVersion {
		slog.Warn("scene document format is newer than supported", "version", ver, "supported", FormatVersion)
	}
	vs := strings.TrimSpace(strings.TrimPrefix(strings.TrimPrefix(app, AppPrefix), " -"))
	if vs == "" {
		return
	}
	v, err := semver.NewVersion(vs)
	if err != nil {
		slog.Debug("scene document signature has no version", "app", app)
		return
	}
	if cur := semver.MustParse(AppVersion); v.Major() > cur.Major() {
		slog.Warn("scene document was written by a newer version", "version", v.String(), "current", AppVersion)
	}
}

// UnmarshalJSON reads the model from JSON, strictly.
func (m *SceneModel) UnmarshalJSON(b []byte) error {
	return m.ReadBytes(b, ReadOptions{})
}

// ReadBytes reads the model from the given JSON document.
func (m *SceneModel) ReadBytes(b []byte, opts ReadOptions) error {
	var d Data
	if err := json.Unmarshal(b, &d); err != nil {
		return err
	}
	return m.Read(d, opts)
}

// Open reads the scene document at the given path of fsys.
func Open(fsys hackpadfs.FS, path string, opts ReadOptions) (*SceneModel, error) {
	b, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, err
	}
	m := &SceneModel{}
	if err := m.ReadBytes(b, opts); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// Save writes the model to the given path of fsys, atomically.
func (m *SceneModel) Save(fsys hackpadfs.FS, path string) error {
	b, err := m.Bytes()
	if err != nil {
		return err
	}
	return fsx.WriteFileAtomic(fsys, path, b, 0o644)
}
