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
	"fmt"
	"io"
	"slices"

	"github.com/cespare/xxhash/v2"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"

	"github.com/ajroetker/hwygeom/geom"
	"github.com/ajroetker/hwygeom/geom/batch"
	"github.com/ajroetker/hwygeom/hwy"
	"github.com/ajroetker/hwygeom/internal/scene"
)

const (
	formatYAML = "yaml"
	formatText = "text"
)

// Report is the culling result of one scene. Visible and Culled keep the
// scene's object order. Digest identifies the visible set regardless of
// order.
type Report struct {
	Scene   string   `yaml:"scene"`
	Path    string   `yaml:"path"`
	Backend string   `yaml:"backend"`
	Objects int      `yaml:"objects"`
	Visible []string `yaml:"visible"`
	Culled  []string `yaml:"culled"`
	Digest  string   `yaml:"digest"`
}

func objectID(o scene.Object, _ int) string { return o.ID }

func isSphere(o scene.Object, _ int) bool { return o.IsSphere() }

func cull(s *scene.Scene, path string, b *batch.Batcher[float64]) Report {
	f := s.Camera.Frustum()

	spheres, hulls := lo.FilterReject(s.Objects, isSphere)
	centers := lo.Map(spheres, func(o scene.Object, _ int) geom.Vector3d { return o.Center.Vector() })
	radii := lo.Map(spheres, func(o scene.Object, _ int) float64 { return o.Radius })
	points := lo.Map(hulls, func(o scene.Object, _ int) []geom.Vector3d { return o.Hull() })

	sphereVisible := make([]bool, len(spheres))
	hullVisible := make([]bool, len(hulls))
	b.CullSpheres(f, centers, radii, sphereVisible)
	b.CullPoints(f, points, hullVisible)

	inside := make(map[string]bool, len(s.Objects))
	for i, o := range spheres {
		inside[o.ID] = sphereVisible[i]
	}
	for i, o := range hulls {
		inside[o.ID] = hullVisible[i]
	}
	visible, culled := lo.FilterReject(s.Objects, func(o scene.Object, _ int) bool { return inside[o.ID] })

	r := Report{
		Scene:   s.Name,
		Path:    path,
		Backend: hwy.CurrentName(),
		Objects: len(s.Objects),
		Visible: lo.Map(visible, objectID),
		Culled:  lo.Map(culled, objectID),
	}
	r.Digest = digest(r.Visible)
	return r
}

// digest hashes the sorted ids with xxhash, NUL separated.
func digest(ids []string) string {
	sorted := slices.Clone(ids)
	slices.Sort(sorted)
	d := xxhash.New()
	for _, id := range sorted {
		_, _ = d.WriteString(id)
		_, _ = d.Write([]byte{0})
	}
	return fmt.Sprintf("%016x", d.Sum64())
}

func writeReports(w io.Writer, format string, reports []Report) error {
	if format == formatText {
		for _, r := range reports {
			if _, err := fmt.Fprintf(w, "%s (%s): %d of %d visible, digest %s\n",
				r.Scene, r.Path, len(r.Visible), r.Objects, r.Digest); err != nil {
				return err
			}
		}
		return nil
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	for _, r := range reports {
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("encode report %s: %w", r.Path, err)
		}
	}
	return enc.Close()
}
