package canvas

// The viewport transform mapping canvas (world) coordinates to device
// coordinates: device = world*Scale + Pan.
type ViewTransform struct {
	PanX float64
	PanY float64
	Scale float64
}

// Scale clamp defaults. See [Surface.SetScaleRange]().
const defaultMinScale = 0.1
const defaultMaxScale = 32.0

// Applies the transform to a world coordinate.
func (self ViewTransform) Apply(x, y float64) (float64, float64) {
	return x*self.Scale + self.PanX, y*self.Scale + self.PanY
}

// Inverts the transform, mapping a device coordinate back to world
// space. A zero scale would be degenerate; the surface never produces
// one, but stray zero-value transforms invert as identity.
func (self ViewTransform) Invert(x, y float64) (float64, float64) {
	if self.Scale == 0 { return x, y }
	return (x - self.PanX)/self.Scale, (y - self.PanY)/self.Scale
}

// Returns the surface's current view transform.
func (self *Surface) View() ViewTransform {
	self.initView()
	return self.view
}

// Configures the zoom clamping range. Both values must be strictly
// positive and min must not exceed max, or the call panics. The
// defaults are [0.1, 32].
func (self *Surface) SetScaleRange(minScale, maxScale float64) {
	if minScale <= 0 || maxScale <= 0 { panic("scale range values must be positive") }
	if minScale > maxScale { panic("minScale > maxScale") }
	self.minScale = minScale
	self.maxScale = maxScale
	self.initView()
	self.view.Scale = self.clampScale(self.view.Scale)
}

// Translates the view by the given device-space delta.
func (self *Surface) PanBy(dx, dy float64) {
	self.initView()
	self.view.PanX += dx
	self.view.PanY += dy
	self.needsRedraw = true
}

// Scales the view by the given factor, keeping the world point under
// the given device-space focal point fixed on screen. The resulting
// scale is clamped to the configured range, so extreme factors can't
// blow up the transform numerically.
func (self *Surface) ZoomAt(focalX, focalY, factor float64) {
	self.initView()
	oldScale := self.view.Scale
	newScale := self.clampScale(oldScale*factor)
	if newScale == oldScale { return }
	ratio := newScale/oldScale
	self.view.PanX = focalX - (focalX - self.view.PanX)*ratio
	self.view.PanY = focalY - (focalY - self.view.PanY)*ratio
	self.view.Scale = newScale
	self.needsRedraw = true
}

func (self *Surface) clampScale(scale float64) float64 {
	minScale, maxScale := self.minScale, self.maxScale
	if minScale == 0 { minScale = defaultMinScale }
	if maxScale == 0 { maxScale = defaultMaxScale }
	if scale < minScale { return minScale }
	if scale > maxScale { return maxScale }
	return scale
}

func (self *Surface) initView() {
	if self.view.Scale == 0 { self.view.Scale = 1 }
}
