package models

// Page names the four screens of the dashboard.
type Page string

const (
	PageLanding       Page = "landing"
	PageStaffArea     Page = "staff_area"
	PageQuickLog      Page = "quick_log"
	PageStudentDetail Page = "student_detail"
)

// ValidPage reports whether the value names a known page.
func ValidPage(p Page) bool {
	switch p {
	case PageLanding, PageStaffArea, PageQuickLog, PageStudentDetail:
		return true
	default:
		return false
	}
}

// StaffSubPage names the tabs inside the staff area. The zero value means
// no tab has been chosen yet.
type StaffSubPage string

const (
	SubPageNone        StaffSubPage = ""
	SubPageMyStudents  StaffSubPage = "my_students"
	SubPageAllStudents StaffSubPage = "all_students"
	SubPageReports     StaffSubPage = "reports"
	SubPageSettings    StaffSubPage = "settings"
)

// ValidSubPage reports whether the value names a known staff-area tab
// (the unset zero value included).
func ValidSubPage(sp StaffSubPage) bool {
	switch sp {
	case SubPageNone, SubPageMyStudents, SubPageAllStudents, SubPageReports, SubPageSettings:
		return true
	default:
		return false
	}
}

// ViewID is the logical view the presentation layer should render for the
// current session state.
type ViewID string

const (
	ViewLanding         ViewID = "landing"
	ViewMyStudents      ViewID = "staff_my_students"
	ViewAllStudents     ViewID = "staff_all_students"
	ViewReports         ViewID = "staff_reports"
	ViewSettings        ViewID = "staff_settings"
	ViewSchoolWide      ViewID = "school_wide_overview"
	ViewQuickLogForm    ViewID = "quick_log_form"
	ViewStudentOverview ViewID = "student_overview"
)
