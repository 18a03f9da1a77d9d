// Package taxonomy holds the fixed category tree used to classify items and
// purchase requests: Category -> SubCategory -> Program. The tree is
// configuration data; illegal combinations are rejected at validation time.
package taxonomy

import "errors"

type (
	Category    string
	SubCategory string
	Program     string
	ItemType    string
)

const (
	CategoryNonAcademic Category = "Non-Academic"
	CategoryAcademic    Category = "Academic"
)

const (
	ItemTypeEquipment      ItemType = "Equipment"
	ItemTypeOfficeSupplies ItemType = "Office Supplies"
	ItemTypeBooks          ItemType = "Books"
	ItemTypeElectrical     ItemType = "Electrical Parts"
)

var (
	ErrUnknownCategory    = errors.New("unknown category")
	ErrUnknownSubCategory = errors.New("sub-category does not belong to category")
	ErrUnknownProgram     = errors.New("program does not belong to sub-category")
	ErrProgramNotAllowed  = errors.New("program not allowed for this category")
	ErrUnknownItemType    = errors.New("unknown item type")
)

var nonAcademicOffices = []SubCategory{
	"FINANCE OFFICE",
	"OFFICE OF THE PRESIDENT",
	"HUMAN RESOURCE",
	"LIBRARY",
	"MANAGEMENT INFORMATION SYSTEM",
	"OFFICE OF THE REGISTRAR",
	"OFFICE OF THE STUDENT AFFAIRS AND SERVICES",
	"RESEARCH AND CREATIVE WORKS",
	"ACCOUNTING",
	"CLINIC",
	"GUIDANCE OFFICE",
	"NATIONAL SERVICE TRAINING PROGRAM",
}

var academicColleges = []SubCategory{
	"COLLEGE OF ARTS AND SCIENCES",
	"COLLEGE OF BUSINESS ADMINISTRATION",
	"COLLEGE OF COMPUTER STUDIES",
	"COLLEGE OF CRIMINOLOGY",
	"COLLEGE OF EDUCATION",
	"COLLEGE OF ENGINEERING",
	"BED",
}

var academicPrograms = map[SubCategory][]Program{
	"COLLEGE OF ARTS AND SCIENCES": {
		"Bachelor Of Arts In English Language",
		"Bachelor Of Arts In Political Science",
		"Batsilyer Ng Sining Sa Filipino / Bachelor Of Arts In Filipino",
	},
	"COLLEGE OF BUSINESS ADMINISTRATION": {
		"Bachelor Of Science In Business Administration Major In Marketing Management",
		"Bachelor Of Science In Business Administration Major In Operation Management",
		"Bachelor Of Science In Business Administration Major In Financial Management",
		"Bachelor Of Science In Business Administration Major In Human Resource Management",
	},
	"COLLEGE OF COMPUTER STUDIES": {
		"BS Computer Science",
		"BS Information Technology",
	},
	"COLLEGE OF CRIMINOLOGY": {},
	"COLLEGE OF EDUCATION": {
		"Bachelor In Elementary Education",
		"Bachelor In Secondary Education Major In English",
		"Bachelor In Secondary Education Major In Filipino",
		"Bachelor In Secondary Education Major In Math",
	},
	"COLLEGE OF ENGINEERING": {
		"Bachelor Of Science In Civil Engineering",
		"Bachelor Of Science In Electrical Engineering",
		"Bachelor Of Science In Mechanical Engineering",
		"Bachelor Of Science In Electronics Engineering",
		"Bachelor Of Science In Computer Engineering",
	},
	"BED": {
		"JUNIOR HIGH SCHOOL",
		"SENIOR HIGH SCHOOL ACCOUNTANCY, BUSINESS & MANAGEMENT (ABM)",
		"SENIOR HIGH SCHOOL HUMANITIES & SOCIAL SCIENCES (HUMSS)",
		"SENIOR HIGH SCHOOL SCIENCE, TECHNOLOGY, ENGINEERING, AND MATHEMATICS (STEM)",
	},
}

var itemTypes = []ItemType{
	ItemTypeEquipment,
	ItemTypeOfficeSupplies,
	ItemTypeBooks,
	ItemTypeElectrical,
}

// Categories returns the top-level categories in display order.
func Categories() []Category {
	return []Category{CategoryNonAcademic, CategoryAcademic}
}

// SubCategories returns the fixed sub-category list for a category:
// offices for Non-Academic, colleges for Academic.
func SubCategories(c Category) []SubCategory {
	switch c {
	case CategoryNonAcademic:
		return append([]SubCategory(nil), nonAcademicOffices...)
	case CategoryAcademic:
		return append([]SubCategory(nil), academicColleges...)
	default:
		return nil
	}
}

// Programs returns the program list for an academic college. Non-academic
// sub-categories and colleges without programs return an empty slice.
func Programs(sub SubCategory) []Program {
	return append([]Program(nil), academicPrograms[sub]...)
}

// ItemTypes returns the fixed item type list.
func ItemTypes() []ItemType {
	return append([]ItemType(nil), itemTypes...)
}

// ValidItemType reports whether t is one of the enumerated item types.
func ValidItemType(t ItemType) bool {
	for _, it := range itemTypes {
		if it == t {
			return true
		}
	}
	return false
}

// Validate checks that the category/sub-category/program combination belongs
// to the tree. An empty program is always permitted; a non-empty program is
// only permitted on an academic college that lists it.
func Validate(c Category, sub SubCategory, program Program) error {
	switch c {
	case CategoryNonAcademic:
		if !containsSub(nonAcademicOffices, sub) {
			return ErrUnknownSubCategory
		}
		if program != "" {
			return ErrProgramNotAllowed
		}
		return nil
	case CategoryAcademic:
		programs, ok := academicPrograms[sub]
		if !ok {
			return ErrUnknownSubCategory
		}
		if program == "" {
			return nil
		}
		for _, p := range programs {
			if p == program {
				return nil
			}
		}
		return ErrUnknownProgram
	default:
		return ErrUnknownCategory
	}
}

func containsSub(list []SubCategory, sub SubCategory) bool {
	for _, s := range list {
		if s == sub {
			return true
		}
	}
	return false
}
