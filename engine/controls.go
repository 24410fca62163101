package engine

import (
	"github.com/lixenwraith/orbits/parameter"
	"github.com/lixenwraith/orbits/physics"
)

// Control operations, each returns whether the request changed state

// --- Run control ---

// Step runs one logical step and the mapping pass, paused or not
func (s *Simulation) Step() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.step()
	s.mapDisplay()
	return true
}

// TogglePause flips between running and paused
func (s *Simulation) TogglePause() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.paused = !s.paused
	return true
}

// SubstepsUp raises the sub-step cap by one
func (s *Simulation) SubstepsUp() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.acc.Substeps >= parameter.MaxSubsteps {
		return false
	}
	s.acc.Substeps++
	return true
}

// SubstepsDown lowers the sub-step cap by one, not below MinSubsteps
func (s *Simulation) SubstepsDown() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.acc.Substeps <= parameter.MinSubsteps {
		return false
	}
	s.acc.Substeps--
	return true
}

// ToggleSubstepPolicy switches between the flat and log sub-step policies
func (s *Simulation) ToggleSubstepPolicy() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.acc.Policy == physics.SubstepFlat {
		s.acc.Policy = physics.SubstepLog
	} else {
		s.acc.Policy = physics.SubstepFlat
	}
	return true
}

// TimescaleUp selects the next longer step length
func (s *Simulation) TimescaleUp() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timescale >= len(parameter.Timescales)-1 {
		return false
	}
	s.timescale++
	return true
}

// TimescaleDown selects the next shorter step length
func (s *Simulation) TimescaleDown() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timescale <= 0 {
		return false
	}
	s.timescale--
	return true
}

// --- Camera control ---

// Pan shifts the view by (dx, dy) pan steps and releases follow mode
func (s *Simulation) Pan(dx, dy float64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if dx == 0 && dy == 0 {
		return false
	}
	s.follow = NoFollow
	s.camera.Shift(dx*parameter.PanStep, dy*parameter.PanStep)
	s.mapDisplay()
	return true
}

// ZoomIn halves the view extent; while following, the follow padding shrinks with it
func (s *Simulation) ZoomIn() bool {
	return s.zoom(1 / parameter.ZoomStep)
}

// ZoomOut doubles the view extent
func (s *Simulation) ZoomOut() bool {
	return s.zoom(parameter.ZoomStep)
}

func (s *Simulation) zoom(factor float64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.camera.Zoom(factor, 1, 1); err != nil {
		return false
	}
	if s.follow != NoFollow {
		s.zoomLevel *= factor
	}
	s.mapDisplay()
	return true
}

// ForceBounds sets explicit AU bounds and releases follow mode
func (s *Simulation) ForceBounds(xmin, xmax, ymin, ymax float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.camera.ForceBounds(xmin, xmax, ymin, ymax); err != nil {
		return err
	}
	s.follow = NoFollow
	s.mapDisplay()
	return nil
}

// ResetBounds restores the default ±DefaultBoundsHalf AU view
func (s *Simulation) ResetBounds() bool {
	half := parameter.DefaultBoundsHalf
	return s.ForceBounds(-half, half, -half, half) == nil
}

// FitNow fits the view to all bodies immediately and releases follow mode
func (s *Simulation) FitNow() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.bodies) == 0 {
		return false
	}
	s.follow = NoFollow
	s.camera.Fit(s.bodies)
	s.mapDisplay()
	return true
}

// ToggleAutoFit flips periodic fitting
func (s *Simulation) ToggleAutoFit() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.autoFit = !s.autoFit
	return true
}

// FollowNext follows the next body in list order, starting at the first; clamped at the end
func (s *Simulation) FollowNext() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch {
	case len(s.bodies) == 0:
		return false
	case s.follow == NoFollow:
		s.follow = 0
	case s.follow < len(s.bodies)-1:
		s.follow++
	default:
		return false
	}
	s.mapDisplay()
	return true
}

// FollowPrev follows the previous body in list order, starting at the first; clamped at the start
func (s *Simulation) FollowPrev() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch {
	case len(s.bodies) == 0:
		return false
	case s.follow == NoFollow:
		s.follow = 0
	case s.follow > 0:
		s.follow--
	default:
		return false
	}
	s.mapDisplay()
	return true
}

// Unfollow releases follow mode, the view stays where it is
func (s *Simulation) Unfollow() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.follow == NoFollow {
		return false
	}
	s.follow = NoFollow
	return true
}

// --- Presentation ---

// ObjectSizeUp grows the drawn body radius
func (s *Simulation) ObjectSizeUp() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.objectSize >= parameter.MaxObjectSize {
		return false
	}
	s.objectSize++
	return true
}

// ObjectSizeDown shrinks the drawn body radius
func (s *Simulation) ObjectSizeDown() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.objectSize <= 0 {
		return false
	}
	s.objectSize--
	return true
}

// ToggleDebug flips the per-body debug overlay
func (s *Simulation) ToggleDebug() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.debug = !s.debug
	return true
}
