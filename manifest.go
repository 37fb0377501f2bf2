// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package rendersheet

// Manifest is a serializable description of a rendered sheet, suitable for
// writing next to the page images.
type Manifest struct {
	Scale      float64         `json:"scale"`
	Resolution float64         `json:"resolution"`
	Pages      []ManifestPage  `json:"pages"`
	Frames     []ManifestFrame `json:"frames"`
}

// ManifestPage describes one page.
type ManifestPage struct {
	Index  int `json:"index"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// ManifestFrame locates one entry, in device pixels.
type ManifestFrame struct {
	Name   string `json:"name"`
	Page   int    `json:"page"`
	X      int    `json:"x"`
	Y      int    `json:"y"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// Manifest describes the current pages and every placed entry, in
// insertion order. Entries added since the last Render are omitted.
func (s *Sheet) Manifest() Manifest {
	s.mu.RLock()
	defer s.mu.RUnlock()

	m := Manifest{
		Scale:      s.cfg.Scale,
		Resolution: s.cfg.Resolution,
		Pages:      make([]ManifestPage, 0, len(s.pages)),
		Frames:     make([]ManifestFrame, 0, s.registry.Len()),
	}
	for _, p := range s.pages {
		m.Pages = append(m.Pages, ManifestPage{Index: p.index, Width: p.width, Height: p.height})
	}
	for e := range s.registry.All() {
		if !e.placed {
			continue
		}
		m.Frames = append(m.Frames, ManifestFrame{
			Name:   e.name,
			Page:   e.placement.Page,
			X:      e.placement.X,
			Y:      e.placement.Y,
			Width:  e.width,
			Height: e.height,
		})
	}
	return m
}

// PageInfo contains information about a single page.
type PageInfo struct {
	Index       int
	Width       int
	Height      int
	EntryCount  int
	Utilization float64
	MemoryBytes int
}

// PageInfos returns information about all published pages.
func (s *Sheet) PageInfos() []PageInfo {
	s.mu.RLock()
	defer s.mu.RUnlock()

	infos := make([]PageInfo, len(s.pages))
	for i, p := range s.pages {
		infos[i] = PageInfo{
			Index:       p.index,
			Width:       p.width,
			Height:      p.height,
			EntryCount:  p.entries,
			Utilization: p.Utilization(),
			MemoryBytes: len(p.pixmap.Data()),
		}
	}
	return infos
}
