package applet

// Hemisphere selects one of the two virtual halves of the module.
type Hemisphere uint8

const (
	Left Hemisphere = iota
	Right
)

const (
	// Channels is the number of logical channels an applet owns per direction.
	Channels = 2

	// PhysicalChannels is the number of converter channels and digital lines on the module.
	PhysicalChannels = 4

	// HalfWidth is the pixel width of one hemisphere's display region.
	HalfWidth = 65
)

func (h Hemisphere) String() string {
	switch h {
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// Index returns 0 for Left and 1 for Right.
func (h Hemisphere) Index() int { return int(h) }

// Valid reports whether h names one of the two hemispheres.
func (h Hemisphere) Valid() bool { return h == Left || h == Right }

// Binding ties an applet instance to a hemisphere.
//
// All offsets are derived from the hemisphere when the binding is created and never change.
type Binding struct {
	hemisphere Hemisphere
	gfxOffset  int
	ioOffset   int
}

// NewBinding derives the display and I/O offsets for h.
func NewBinding(h Hemisphere) Binding {
	return Binding{
		hemisphere: h,
		gfxOffset:  h.Index() * HalfWidth,
		ioOffset:   h.Index() * Channels,
	}
}

func (b Binding) Hemisphere() Hemisphere { return b.hemisphere }
func (b Binding) GfxOffset() int         { return b.gfxOffset }
func (b Binding) IOOffset() int          { return b.ioOffset }
