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

package scene

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

const demo = `
name: demo
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
  - center: [0, 0, 50]
    radius: 2
  - id: fence
    points: [[-1, 0, 0], [1, 0, 0]]
`

func TestDecode(t *testing.T) {
	s, err := Decode(strings.NewReader(demo))
	require.NoError(t, err)

	assert.Equal(t, "demo", s.Name)
	assert.Equal(t, Vec3{0, 0, 10}, s.Camera.Eye)
	assert.Equal(t, 60.0, s.Camera.FOV)
	require.Len(t, s.Objects, 3)

	assert.Equal(t, "crate", s.Objects[0].ID)
	assert.True(t, s.Objects[0].IsSphere())
	assert.Equal(t, 1.0, s.Objects[0].Radius)

	_, err = uuid.Parse(s.Objects[1].ID)
	assert.NoError(t, err, "anonymous objects get a UUID, got %q", s.Objects[1].ID)

	fence := s.Objects[2]
	assert.False(t, fence.IsSphere())
	hull := fence.Hull()
	require.Len(t, hull, 2)
	assert.Equal(t, [3]float64{-1, 0, 0}, hull[0].Array())

	f := s.Camera.Frustum()
	assert.True(t, f.IsInsideSphere(s.Objects[0].Center.Vector(), s.Objects[0].Radius))
	assert.False(t, f.IsInsideSphere(s.Objects[1].Center.Vector(), s.Objects[1].Radius))
	assert.True(t, f.IsInsidePoints(hull...))
}

func TestDecodeErrors(t *testing.T) {
	_, err := Decode(strings.NewReader(""))
	assert.ErrorIs(t, err, ErrEmpty)

	_, err = Decode(strings.NewReader("name: [unterminated"))
	assert.ErrorContains(t, err, "decode")

	_, err = Decode(strings.NewReader("name: x\ncolor: red\n"))
	assert.ErrorContains(t, err, "color", "unknown fields are rejected")
}

func validCamera() Camera {
	return Camera{
		Eye:    Vec3{0, 0, 10},
		Up:     Vec3{0, 1, 0},
		FOV:    60,
		Aspect: 1,
		Near:   0.1,
		Far:    100,
	}
}

func TestCameraValidate(t *testing.T) {
	require.NoError(t, validCamera().Validate())

	for _, tc := range []struct {
		name   string
		modify func(c *Camera)
		want   string
	}{
		{"near zero", func(c *Camera) { c.Near = 0 }, "near"},
		{"far before near", func(c *Camera) { c.Far = 0.05 }, "far"},
		{"fov too wide", func(c *Camera) { c.FOV = 180 }, "fov"},
		{"fov zero", func(c *Camera) { c.FOV = 0 }, "fov"},
		{"aspect", func(c *Camera) { c.Aspect = -1 }, "aspect"},
		{"eye on target", func(c *Camera) { c.Eye = c.Target }, "coincide"},
		{"zero up", func(c *Camera) { c.Up = Vec3{} }, "up is zero"},
		{"parallel up", func(c *Camera) { c.Up = Vec3{0, 0, 3} }, "parallel"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			c := validCamera()
			tc.modify(&c)
			err := c.Validate()
			assert.ErrorIs(t, err, ErrInvalidCamera)
			assert.ErrorContains(t, err, tc.want)
		})
	}
}

func TestObjectValidate(t *testing.T) {
	center := &Vec3{1, 2, 3}
	assert.NoError(t, Object{ID: "a", Center: center, Radius: 0}.Validate())
	assert.NoError(t, Object{ID: "b", Points: []Vec3{{0, 0, 0}}}.Validate())

	for _, o := range []Object{
		{ID: "both", Center: center, Points: []Vec3{{0, 0, 0}}},
		{ID: "none"},
		{ID: "negative", Center: center, Radius: -1},
		{ID: "stray radius", Points: []Vec3{{0, 0, 0}}, Radius: 2},
	} {
		err := o.Validate()
		assert.ErrorIs(t, err, ErrInvalidObject, o.ID)
		assert.ErrorContains(t, err, o.ID)
	}
}

func TestSceneValidateCollectsAll(t *testing.T) {
	s := Scene{
		Camera: Camera{Up: Vec3{0, 1, 0}, Eye: Vec3{0, 0, 1}},
		Objects: []Object{
			{ID: "x", Center: &Vec3{}},
			{ID: "x", Center: &Vec3{}},
			{ID: "y"},
		},
	}
	err := s.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidCamera)
	assert.ErrorIs(t, err, ErrInvalidObject)
	assert.ErrorIs(t, err, ErrDuplicateID)
	// near, far, fov and aspect, plus one bad object and one duplicate.
	assert.Len(t, multierr.Errors(err), 6)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "demo.yaml")
	require.NoError(t, os.WriteFile(path, []byte(demo), 0o600))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "demo", s.Name)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte(strings.Replace(demo, "near: 0.1", "near: -1", 1)), 0o600))
	_, err = Load(bad)
	assert.ErrorIs(t, err, ErrInvalidCamera)
	assert.ErrorContains(t, err, bad)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
