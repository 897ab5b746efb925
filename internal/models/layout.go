package models

// LayoutInfo describes a layout for writers and console output.
type LayoutInfo struct {
	Kind        LayoutKind
	Name        string
	Columns     []string
	HasOvertime bool
	HasBreak    bool
}

var layouts = map[LayoutKind]LayoutInfo{
	LayoutSimple: {
		Kind:    LayoutSimple,
		Name:    "דוח נוכחות פשוט",
		Columns: []string{"תאריך", "יום", "כניסה", "יציאה", "שעות", "הערות"},
	},
	LayoutDetailed: {
		Kind: LayoutDetailed,
		Name: "דוח נוכחות מפורט עם שעות נוספות",
		Columns: []string{"תאריך", "יום", "מקום", "כניסה", "יציאה", "הפסקה",
			`סה"כ`, "100%", "125%", "150%"},
		HasOvertime: true,
		HasBreak:    true,
	},
}

// Describe returns the layout description. Unknown kinds describe as SIMPLE,
// the same default the classifier falls back to.
func (k LayoutKind) Describe() LayoutInfo {
	if info, ok := layouts[k]; ok {
		return info.withColumnsCopy()
	}
	return layouts[LayoutSimple].withColumnsCopy()
}

func (i LayoutInfo) withColumnsCopy() LayoutInfo {
	i.Columns = append([]string(nil), i.Columns...)
	return i
}
