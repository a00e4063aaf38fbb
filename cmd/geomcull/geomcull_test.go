// Copyright 2025 go-highway Authors
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

package main

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/ajroetker/hwygeom/geom/batch"
	"github.com/ajroetker/hwygeom/hwy"
	"github.com/ajroetker/hwygeom/internal/scene"
)

const street = `
name: street
camera:
  eye: [0, 0, 10]
  target: [0, 0, 0]
  up: [0, 1, 0]
  fov: 60
  aspect: 1.5
  near: 0.1
  far: 100
objects:
  - id: crate
    center: [0, 0, 0]
    radius: 1
  - id: behind
    center: [0, 0, 50]
    radius: 2
  - id: fence
    points: [[-1, 0, 0], [1, 0, 0]]
  - id: far-wall
    points: [[0, 0, -200], [5, 0, -300]]
  - id: edge
    center: [8, 0, 0]
    radius: 3
`

func writeScene(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestCull(t *testing.T) {
	s, err := scene.Decode(strings.NewReader(street))
	require.NoError(t, err)

	r := cull(s, "street.yaml", batch.New[float64](nil))
	assert.Equal(t, "street", r.Scene)
	assert.Equal(t, "street.yaml", r.Path)
	assert.Equal(t, hwy.CurrentName(), r.Backend)
	assert.Equal(t, 5, r.Objects)
	assert.Equal(t, []string{"crate", "fence", "edge"}, r.Visible)
	assert.Equal(t, []string{"behind", "far-wall"}, r.Culled)
	assert.Equal(t, digest([]string{"edge", "crate", "fence"}), r.Digest)
}

func TestDigest(t *testing.T) {
	assert.Equal(t, digest([]string{"a", "b"}), digest([]string{"b", "a"}))
	assert.NotEqual(t, digest([]string{"a", "b"}), digest([]string{"ab"}))
	assert.NotEqual(t, digest(nil), digest([]string{""}))
	assert.Len(t, digest(nil), 16)
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(append([]string{"--log-level", "error"}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestCommandYAML(t *testing.T) {
	dir := t.TempDir()
	first := writeScene(t, dir, "street.yaml", street)
	second := writeScene(t, dir, "other.yaml", strings.Replace(street, "name: street", "name: other", 1))

	out, err := execute(t, "--workers", "3", "--grain", "1", first, second)
	require.NoError(t, err)

	dec := yaml.NewDecoder(strings.NewReader(out))
	var reports []Report
	for {
		var r Report
		err := dec.Decode(&r)
		if errors.Is(err, io.EOF) {
			break
		}
		require.NoError(t, err)
		reports = append(reports, r)
	}
	require.Len(t, reports, 2)
	assert.Equal(t, "street", reports[0].Scene)
	assert.Equal(t, first, reports[0].Path)
	assert.Equal(t, "other", reports[1].Scene)
	assert.Equal(t, reports[0].Visible, reports[1].Visible)
	assert.Equal(t, reports[0].Digest, reports[1].Digest)
}

func TestCommandText(t *testing.T) {
	path := writeScene(t, t.TempDir(), "street.yaml", street)
	out, err := execute(t, "-f", "text", path)
	require.NoError(t, err)
	assert.Contains(t, out, "street ("+path+"): 3 of 5 visible")
}

func TestCommandErrors(t *testing.T) {
	dir := t.TempDir()
	good := writeScene(t, dir, "street.yaml", street)
	bad := writeScene(t, dir, "bad.yaml", strings.Replace(street, "fov: 60", "fov: 0", 1))

	_, err := execute(t)
	assert.Error(t, err, "no scene files")

	_, err = execute(t, "--format", "xml", good)
	assert.ErrorContains(t, err, "unknown format")

	_, err = execute(t, good, bad)
	assert.ErrorIs(t, err, scene.ErrInvalidCamera)

	_, err = execute(t, filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	cmd := newRootCommand()
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{"--log-level", "chatty", good})
	assert.ErrorContains(t, cmd.Execute(), "logging")
}
