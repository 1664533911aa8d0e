package report

import "github.com/xuri/excelize/v2"

// Palette carried over from the workbook the sales team already knows.
const (
	colorTitle     = "2C3E50"
	colorSubtitle  = "34495E"
	colorHeader    = "3498DB"
	colorGreenBg   = "C6EFCE"
	colorGreenText = "006100"
	colorAmberBg   = "FFEB9C"
	colorAmberText = "9C6500"
	colorRedBg     = "FFC7CE"
	colorRedText   = "9C0006"
)

// styles holds the style IDs registered on one workbook.
type styles struct {
	title    int
	subtitle int
	header   int
	normal   int
	wrap     int
	currency int
	number   int
	integer  int
	green    int
	amber    int
	red      int
}

func thinBorder() []excelize.Border {
	return []excelize.Border{
		{Type: "left", Color: "000000", Style: 1},
		{Type: "right", Color: "000000", Style: 1},
		{Type: "top", Color: "000000", Style: 1},
		{Type: "bottom", Color: "000000", Style: 1},
	}
}

// buildStyles registers the shared cell styles on a fresh workbook.
func buildStyles(f *excelize.File) (*styles, error) {
	s := &styles{}
	currencyFmt := "$ #,##0.00"
	numberFmt := "#,##0.00"
	integerFmt := "#,##0"

	var err error

	s.title, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 16, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{colorTitle}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    thinBorder(),
	})
	if err != nil {
		return nil, err
	}

	s.subtitle, err = f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true, Size: 12, Color: "FFFFFF"},
		Fill:   excelize.Fill{Type: "pattern", Color: []string{colorSubtitle}, Pattern: 1},
		Border: thinBorder(),
	})
	if err != nil {
		return nil, err
	}

	s.header, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{colorHeader}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
		Border:    thinBorder(),
	})
	if err != nil {
		return nil, err
	}

	s.normal, err = f.NewStyle(&excelize.Style{Border: thinBorder()})
	if err != nil {
		return nil, err
	}

	s.wrap, err = f.NewStyle(&excelize.Style{
		Border:    thinBorder(),
		Alignment: &excelize.Alignment{WrapText: true, Vertical: "center"},
	})
	if err != nil {
		return nil, err
	}

	s.currency, err = f.NewStyle(&excelize.Style{Border: thinBorder(), CustomNumFmt: &currencyFmt})
	if err != nil {
		return nil, err
	}

	s.number, err = f.NewStyle(&excelize.Style{Border: thinBorder(), CustomNumFmt: &numberFmt})
	if err != nil {
		return nil, err
	}

	s.integer, err = f.NewStyle(&excelize.Style{Border: thinBorder(), CustomNumFmt: &integerFmt})
	if err != nil {
		return nil, err
	}

	s.green, err = f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true, Color: colorGreenText},
		Fill:   excelize.Fill{Type: "pattern", Color: []string{colorGreenBg}, Pattern: 1},
		Border: thinBorder(),
	})
	if err != nil {
		return nil, err
	}

	s.amber, err = f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true, Color: colorAmberText},
		Fill:   excelize.Fill{Type: "pattern", Color: []string{colorAmberBg}, Pattern: 1},
		Border: thinBorder(),
	})
	if err != nil {
		return nil, err
	}

	s.red, err = f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true, Color: colorRedText},
		Fill:   excelize.Fill{Type: "pattern", Color: []string{colorRedBg}, Pattern: 1},
		Border: thinBorder(),
	})
	if err != nil {
		return nil, err
	}

	return s, nil
}

// tierStyle maps a priority tier to its traffic-light style.
func (s *styles) tierStyle(tier string) int {
	switch tier {
	case "Alta":
		return s.green
	case "Media":
		return s.amber
	default:
		return s.red
	}
}
