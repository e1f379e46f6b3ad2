package icon

// geometry shared by the split icons
const (
	separation  = 4  // gap between the split line and the brackets
	splitHeight = 6  // height of the bracket ends
	arrowSize   = 16 // base of the "add" arrows
	arrowAspect = 4  // extra length of the "add" arrows
	crossSize   = 16 // half size of the "remove" cross
)

// SplitLines draws the split primitive: a blue line across the icon,
// between two black brackets inset by the border.
func SplitLines(c Canvas, width, height, border int) {
	w, b := float64(width), float64(border)
	middle := w / 2

	SetColor(c, 0, 0, 255, 255)
	c.SetLineWidth(2)

	c.MoveTo(0, middle)
	c.LineTo(w, middle)

	c.Stroke()

	SetColor(c, 0, 0, 0, 255)
	c.SetLineWidth(2)

	c.MoveTo(b, middle-separation-splitHeight)
	c.LineTo(b, middle-separation)
	c.LineTo(w-b, middle-separation)
	c.LineTo(w-b, middle-separation-splitHeight)

	c.MoveTo(b, middle+separation+splitHeight)
	c.LineTo(b, middle+separation)
	c.LineTo(w-b, middle+separation)
	c.LineTo(w-b, middle+separation+splitHeight)

	c.Stroke()
}

// AddArrows draws two green triangles, above and below the split line.
func AddArrows(c Canvas, width, height, border int) {
	middle := float64(width) / 2

	SetColor(c, 70, 160, 70, 255)
	c.SetLineWidth(2)

	c.MoveTo(middle-arrowSize/2, middle-separation*2)
	c.LineTo(middle+arrowSize/2, middle-separation*2)
	c.LineTo(middle, middle-separation-arrowSize-arrowAspect)
	c.ClosePath()

	c.MoveTo(middle-arrowSize/2, middle+separation*2)
	c.LineTo(middle+arrowSize/2, middle+separation*2)
	c.LineTo(middle, middle+separation+arrowSize+arrowAspect)
	c.ClosePath()

	c.FillPreserve()
	c.Stroke()
}

// RemoveCross draws a red X centered on the split line.
func RemoveCross(c Canvas, width, height, border int) {
	middle := float64(width) / 2

	SetColor(c, 255, 0, 0, 255)
	c.SetLineWidth(6)
	c.SetLineCap(RoundCap)

	c.MoveTo(middle-crossSize, middle-crossSize)
	c.LineTo(middle+crossSize, middle+crossSize)

	c.MoveTo(middle+crossSize, middle-crossSize)
	c.LineTo(middle-crossSize, middle+crossSize)

	c.Stroke()
}
