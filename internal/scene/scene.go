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

// Package scene loads the YAML scene files consumed by geomcull: one camera
// and a list of objects, each either a bounding sphere or a point hull.
package scene

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"github.com/ajroetker/hwygeom/geom"
)

var (
	ErrEmpty         = errors.New("empty scene document")
	ErrInvalidCamera = errors.New("invalid camera")
	ErrInvalidObject = errors.New("invalid object")
	ErrDuplicateID   = errors.New("duplicate object id")
)

// Vec3 is a point written as a YAML sequence [x, y, z].
type Vec3 [3]float64

// Vector returns v as a geom vector.
func (v Vec3) Vector() geom.Vector3d {
	return geom.Vector3FromArray([3]float64(v))
}

// Camera is a right-handed perspective camera. FOV is the vertical field of
// view in degrees.
type Camera struct {
	Eye    Vec3    `yaml:"eye"`
	Target Vec3    `yaml:"target"`
	Up     Vec3    `yaml:"up"`
	FOV    float64 `yaml:"fov"`
	Aspect float64 `yaml:"aspect"`
	Near   float64 `yaml:"near"`
	Far    float64 `yaml:"far"`
}

// Object is a sphere when Center is set and a point hull when Points is.
type Object struct {
	ID     string  `yaml:"id,omitempty"`
	Center *Vec3   `yaml:"center,omitempty"`
	Radius float64 `yaml:"radius,omitempty"`
	Points []Vec3  `yaml:"points,omitempty"`
}

// Scene is a decoded scene file.
type Scene struct {
	Name    string   `yaml:"name"`
	Camera  Camera   `yaml:"camera"`
	Objects []Object `yaml:"objects"`
}

// Load reads and decodes the scene file at path.
func Load(path string) (*Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	defer f.Close()

	s, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("scene %s: %w", path, err)
	}
	return s, nil
}

// Decode reads one YAML document from r, assigns a random UUID to every
// object without an id and validates the result. Unknown fields are errors.
func Decode(r io.Reader) (*Scene, error) {
	var s Scene
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmpty
		}
		return nil, fmt.Errorf("decode: %w", err)
	}

	for i := range s.Objects {
		if s.Objects[i].ID == "" {
			s.Objects[i].ID = uuid.NewString()
		}
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate reports every problem in s. Each reported error wraps one of
// ErrInvalidCamera, ErrInvalidObject or ErrDuplicateID.
func (s *Scene) Validate() error {
	err := s.Camera.Validate()

	seen := make(map[string]int, len(s.Objects))
	for i, o := range s.Objects {
		if oerr := o.Validate(); oerr != nil {
			err = multierr.Append(err, fmt.Errorf("object %d: %w", i, oerr))
		}
		if o.ID == "" {
			continue
		}
		if j, dup := seen[o.ID]; dup {
			err = multierr.Append(err, fmt.Errorf("%w: %q used by objects %d and %d", ErrDuplicateID, o.ID, j, i))
			continue
		}
		seen[o.ID] = i
	}
	return err
}

// Validate checks the projection parameters and that eye, target and up
// define a view basis.
func (c Camera) Validate() error {
	var err error
	bad := func(format string, args ...any) {
		err = multierr.Append(err, fmt.Errorf("%w: %s", ErrInvalidCamera, fmt.Sprintf(format, args...)))
	}
	if !(c.Near > 0) {
		bad("near %v must be positive", c.Near)
	}
	if !(c.Far > c.Near) {
		bad("far %v must exceed near %v", c.Far, c.Near)
	}
	if !(c.FOV > 0 && c.FOV < 180) {
		bad("fov %v must be in (0, 180)", c.FOV)
	}
	if !(c.Aspect > 0) {
		bad("aspect %v must be positive", c.Aspect)
	}

	dir := c.Target.Vector().Sub(c.Eye.Vector())
	up := c.Up.Vector()
	switch {
	case dir.LengthSq() == 0:
		bad("eye and target coincide at %v", c.Eye)
	case up.LengthSq() == 0:
		bad("up is zero")
	case dir.Cross(up).LengthSq() == 0:
		bad("up %v is parallel to the view direction", c.Up)
	}
	return err
}

// Frustum returns the view frustum of c.
func (c Camera) Frustum() geom.Frustumd {
	return geom.NewFrustumLookAt(c.Eye.Vector(), c.Target.Vector(), c.Up.Vector(), c.FOV, c.Aspect, c.Near, c.Far)
}

// IsSphere reports whether o is a bounding sphere rather than a point hull.
func (o Object) IsSphere() bool {
	return o.Center != nil
}

// Validate checks that o is exactly one of a sphere or a non-empty hull.
func (o Object) Validate() error {
	switch {
	case o.Center != nil && len(o.Points) > 0:
		return fmt.Errorf("%w: %q has both center and points", ErrInvalidObject, o.ID)
	case o.Center == nil && len(o.Points) == 0:
		return fmt.Errorf("%w: %q has neither center nor points", ErrInvalidObject, o.ID)
	case o.Center != nil && !(o.Radius >= 0):
		return fmt.Errorf("%w: %q has radius %v", ErrInvalidObject, o.ID, o.Radius)
	case o.Center == nil && o.Radius != 0:
		return fmt.Errorf("%w: %q has a radius but no center", ErrInvalidObject, o.ID)
	}
	return nil
}

// Hull returns the points of o as geom vectors.
func (o Object) Hull() []geom.Vector3d {
	hull := make([]geom.Vector3d, len(o.Points))
	for i, p := range o.Points {
		hull[i] = p.Vector()
	}
	return hull
}
