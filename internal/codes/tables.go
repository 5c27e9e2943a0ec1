package codes

// The tables below transcribe the 2022 Mortality Multiple Cause-of-Death
// public use file documentation. Labels are the canonical output vocabulary;
// unlabeled entries are codes the documentation defines but that carry no
// analytic meaning (unknown/not stated/other residual buckets).

func lbl[K comparable](code K, label string) Entry[K] { return Entry[K]{Code: code, Label: label} }
func unl[K comparable](code K) Entry[K]               { return Entry[K]{Code: code} }

// RecordType: position 19.
var RecordType = New(
	lbl(1, "RESIDENTS"),
	lbl(2, "NONRESIDENTS"),
)

// ResidentStatus: position 20.
var ResidentStatus = New(
	lbl(1, "RESIDENT"),
	lbl(2, "INTRASTATE_NONRESIDENT"),
	lbl(3, "INTERSTATE_NONRESIDENT"),
	lbl(4, "FOREIGN_RESIDENT"),
)

// Education: position 63 (2003 revision item). 9 = unknown.
var Education = New(
	lbl(1, "8TH_GRADE_OR_LESS"),
	lbl(2, "9_12TH_GRADE_NO_DIPLOMA"),
	lbl(3, "HIGH_SCHOOL_GRADUATE_OR_GED_COMPLETED"),
	lbl(4, "SOME_COLLEGE_CREDIT_NO_DEGREE"),
	lbl(5, "ASSOCIATE_DEGREE"),
	lbl(6, "BACHELOR_DEGREE"),
	lbl(7, "MASTER_DEGREE"),
	lbl(8, "DOCTORATE_DEGREE_OR_PROFESSIONAL_DEGREE"),
	unl(9),
)

// EducationReportingFlag: position 64. Decoded for validation, dropped from
// the output table by the assembler.
var EducationReportingFlag = New(
	lbl(1, "2003_REVISION"),
	lbl(2, "NO_EDUCATION_ITEM_ON_CERTIFICATE"),
)

// Sex: position 69.
var Sex = New(
	lbl("M", "M"),
	lbl("F", "F"),
)

// PlaceOfDeath: position 83. 9 = unknown.
var PlaceOfDeath = New(
	lbl(1, "HOSPITAL_CLINIC_OR_MEDICAL_CENTER_INPATIENT"),
	lbl(2, "HOSPITAL_CLINIC_OR_MEDICAL_CENTER_OUTPATIENT_OR_ER"),
	lbl(3, "HOSPITAL_CLINIC_OR_MEDICAL_CENTER_DEAD_ON_ARRIVAL"),
	lbl(4, "DECEDENT_S_HOME"),
	lbl(5, "HOSPICE_FACILITY"),
	lbl(6, "NURSING_HOME_LONG_TERM_CARE"),
	lbl(7, "OTHER"),
	unl(9),
)

// MaritalStatus: position 84. U = unknown.
var MaritalStatus = New(
	lbl("S", "NEVER_MARRIED_SINGLE"),
	lbl("M", "MARRIED"),
	lbl("W", "WIDOWED"),
	lbl("D", "DIVORCED"),
	unl("U"),
)

// DayOfWeekOfDeath: position 85. 9 = unknown.
var DayOfWeekOfDeath = New(
	lbl(1, "SUNDAY"),
	lbl(2, "MONDAY"),
	lbl(3, "TUESDAY"),
	lbl(4, "WEDNESDAY"),
	lbl(5, "THURSDAY"),
	lbl(6, "FRIDAY"),
	lbl(7, "SATURDAY"),
	unl(9),
)

// MannerOfDeath: position 107. Blank means not specified; every non-blank
// code must be labeled.
var MannerOfDeath = New(
	lbl(1, "ACCIDENT"),
	lbl(2, "SUICIDE"),
	lbl(3, "HOMICIDE"),
	lbl(4, "PENDING_INVESTIGATION"),
	lbl(5, "COULD_NOT_DETERMINE"),
	lbl(6, "SELF_INFLICTED"),
	lbl(7, "NATURAL"),
)

// MethodOfDisposition: position 108. U = unknown.
var MethodOfDisposition = New(
	lbl("B", "BURIAL"),
	lbl("C", "CREMATION"),
	lbl("D", "DONATION"),
	lbl("E", "ENTOMBMENT"),
	lbl("O", "OTHER"),
	lbl("R", "REMOVAL_FROM_JURISDICTION"),
	unl("U"),
)

// ActivityCode: position 144. 8 = other specified, 9 = unspecified; both are
// valid but carry no label.
var ActivityCode = New(
	lbl(0, "ENGAGED_IN_SPORTS"),
	lbl(1, "ENGAGED_IN_LEISURE_ACTIVITY"),
	lbl(2, "WORKING_FOR_INCOME"),
	lbl(3, "ENGAGED_IN_OTHER_TYPES_OF_WORK"),
	lbl(4, "VITAL_ACTIVITIES"),
	unl(8),
	unl(9),
)

// PlaceOfInjury: position 145. 8 = other specified, 9 = unspecified.
var PlaceOfInjury = New(
	lbl(0, "HOME"),
	lbl(1, "RESIDENTIAL_INSTITUTION"),
	lbl(2, "INSTITUTION_OR_PUBLIC_ADMINISTRATIVE_AREA"),
	lbl(3, "SPORTS_AND_ATTHLETICS_AREA"),
	lbl(4, "STREET_AND_HIGHWAY"),
	lbl(5, "TRADE_AND_SERVICE_AREA"),
	lbl(6, "INDUSTRIAL_AND_CONSTRUCTION_AREA"),
	lbl(7, "FARM"),
	unl(8),
	unl(9),
)

// RaceRecode6: position 450.
var RaceRecode6 = New(
	lbl(1, "WHITE"),
	lbl(2, "BLACK"),
	lbl(3, "AMERICAN_INDIAN_AND_ALASKA_NATIVE"),
	lbl(4, "ASIAN"),
	lbl(5, "NATIVE_HAWAIIAN_AND_OTHER_PACIFIC_ISLANDER"),
	lbl(6, "MORE_THAN_ONE_R"),
)

// HispanicOrigin: positions 484-486, keyed by inclusive code ranges.
// 996-999 = unknown.
var HispanicOrigin = NewRanges(
	Band{100, 199, "NON_HISPANIC"},
	Band{200, 209, "SPANIARD"},
	Band{210, 219, "MEXICAN"},
	Band{220, 230, "CENTRAL_AMERICAN"},
	Band{231, 249, "SOUTH_AMERICAN"},
	Band{250, 259, "LATIN_AMERICAN"},
	Band{260, 269, "PUERTO_RICAN"},
	Band{270, 274, "CUBAN"},
	Band{275, 279, "DOMINICAN"},
	Band{280, 299, "OTHER_HISPANIC"},
	Band{996, 999, ""},
)

// HispanicOriginRaceRecode: positions 487-488. 14 = unknown or not stated.
var HispanicOriginRaceRecode = New(
	lbl(1, "MEXICAN"),
	lbl(2, "PUERTO_RICAN"),
	lbl(3, "CUBAN"),
	lbl(4, "DOMINICAN"),
	lbl(5, "CENTRAL_AMERICAN"),
	lbl(6, "SOUTH_AMERICAN"),
	lbl(7, "OTHER_HISPANIC"),
	lbl(8, "NON_HISPANIC_WHITE"),
	lbl(9, "NON_HISPANIC_BLACK"),
	lbl(10, "NON_HISPANIC_AMERICAN_INDIAN_AND_ALASKA_NATIVE"),
	lbl(11, "NON_HISPANIC_ASIAN"),
	lbl(12, "NON_HISPANIC_NATIVE_HAWAIIAN_AND_OTHER_PACIFIC_ISLANDER"),
	lbl(13, "NON_HISPANIC_MORE_THAN_ONE_R"),
	unl(14),
)

// RaceRecode40: positions 489-490. Codes 1-14 are single races; 15-40 are
// composites whose label is the underscore-joined list of components.
var RaceRecode40 = New(
	lbl(1, "WHITE"),
	lbl(2, "BLACK"),
	lbl(3, "AIAN"),
	lbl(4, "ASIAN_INDIAN"),
	lbl(5, "CHINESE"),
	lbl(6, "FILIPINO"),
	lbl(7, "JAPANESE"),
	lbl(8, "KOREAN"),
	lbl(9, "VIETNAMESE"),
	lbl(10, "OTHER_ASIAN"),
	lbl(11, "HAWAIIAN"),
	lbl(12, "GUAMANIAN"),
	lbl(13, "SAMOAN"),
	lbl(14, "OTHER_PACIFIC_ISLANDER"),
	lbl(15, "BLACK_WHITE"),
	lbl(16, "BLACK_AIAN"),
	lbl(17, "BLACK_ASIAN"),
	lbl(18, "BLACK_NHOPI"),
	lbl(19, "AIAN_WHITE"),
	lbl(20, "AIAN_ASIAN"),
	lbl(21, "AIAN_NHOPI"),
	lbl(22, "ASIAN_WHITE"),
	lbl(23, "ASIAN_NHOPI"),
	lbl(24, "NHOPI_WHITE"),
	lbl(25, "BLACK_AIAN_WHITE"),
	lbl(26, "BLACK_AIAN_ASIAN"),
	lbl(27, "BLACK_AIAN_NHOPI"),
	lbl(28, "BLACK_ASIAN_WHITE"),
	lbl(29, "BLACK_ASIAN_NHOPI"),
	lbl(30, "BLACK_NHOPI_WHITE"),
	lbl(31, "AIAN_ASIAN_WHITE"),
	lbl(32, "AIAN_NHOPI_WHITE"),
	lbl(33, "AIAN_ASIAN_NHOPI"),
	lbl(34, "ASIAN_NHOPI_WHITE"),
	lbl(35, "BLACK_AIAN_ASIAN_WHITE"),
	lbl(36, "BLACK_AIAN_ASIAN_NHOPI"),
	lbl(37, "BLACK_AIAN_NHOPI_WHITE"),
	lbl(38, "BLACK_ASIAN_NHOPI_WHITE"),
	lbl(39, "AIAN_ASIAN_NHOPI_WHITE"),
	lbl(40, "BLACK_AIAN_ASIAN_NHOPI_WHITE"),
)

// RaceRecode40SingleMax is the highest single-race code; everything above is
// a composite that decomposes into its constituent races.
const RaceRecode40SingleMax = 14

// OccupationRecode: positions 810-811. 25 = other/misc.
var OccupationRecode = New(
	lbl(1, "MANAGEMENT"),
	lbl(2, "BUSINESS_AND_FINANCIAL_OPERATIONS"),
	lbl(3, "COMPUTATIONAL_AND_MATHEMATICAL"),
	lbl(4, "ARCHITECTURE_AND_ENGINEERING"),
	lbl(5, "LIFE_PHYSICAL_AND_SOCIAL_SCIENCE"),
	lbl(6, "COMMUNITY_AND_SOCIAL_SERVICES"),
	lbl(7, "LEGAL"),
	lbl(8, "EDUCATION_TRAINING_AND_LIBRARY"),
	lbl(9, "ARTS_DESIGN_ENTERTAINMENT_SPORTS_AND_MEDIA"),
	lbl(10, "HEALTHCARE_PRACTITIONERS_AND_TECHNICAL"),
	lbl(11, "HEALTHCARE_SUPPORT"),
	lbl(12, "PROTECTIVE_SERVICE"),
	lbl(13, "FOOD_PREPARATION_AND_SERVING"),
	lbl(14, "BUILDING_AND_GROUNDS_CLEANING_AND_MAINTENANCE"),
	lbl(15, "PERSONAL_CARE_AND_SERVICE"),
	lbl(16, "SALES_AND_RELATED"),
	lbl(17, "OFFICE_AND_ADMINISTRATIVE_SUPPORT"),
	lbl(18, "FARMING_FISHING_AND_FORESTRY"),
	lbl(19, "CONSTRUCTION_AND_EXTRACTION"),
	lbl(20, "INSTALLATION_MAINTENANCE_AND_REPAIR"),
	lbl(21, "PRODUCTION"),
	lbl(22, "TRANSPORTATION_AND_MATERIAL_MOVING"),
	lbl(24, "MILITARY"),
	unl(25),
	lbl(26, "HOUSEWIFE"),
)

// IndustryRecode: positions 816-817. 23 = other/misc/missing.
var IndustryRecode = New(
	lbl(1, "AGRICULTURE_FORESTRY_FISHING_AND_HUNTING"),
	lbl(2, "MINING"),
	lbl(3, "UTILITIES"),
	lbl(4, "CONSTRUCTION"),
	lbl(5, "MANUFACTURING"),
	lbl(6, "WHOLESALE_TRADE"),
	lbl(7, "RETAIL_TRADE"),
	lbl(8, "TRANSPORTATION_AND_WAREHOUSING"),
	lbl(9, "INFORMATION"),
	lbl(10, "FINANCE_AND_INSURANCE"),
	lbl(11, "REAL_ESTATE_RENTAL_AND_LEASING"),
	lbl(12, "PROFESSIONAL_SCIENTIFIC_AND_TECHNICAL_SERVICES"),
	lbl(13, "MANAGEMENT_OF_COMPANIES_AND_ENTERPRISES"),
	lbl(14, "ADMINISTRATIVE_AND_SUPPORT_AND_WASTE_MANAGEMENT_AND_REMEDIATION_SERVICES"),
	lbl(15, "EDUCATIONAL_SERVICES"),
	lbl(16, "HEALTH_CARE_AND_SOCIAL_ASSISTANCE"),
	lbl(17, "ARTS_ENTERTAINMENT_AND_RECREATION"),
	lbl(18, "ACCOMMODATION_AND_FOOD_SERVICES"),
	lbl(19, "OTHER_SERVICES_EXCEPT_PUBLIC_ADMINISTRATION"),
	lbl(20, "PUBLIC_ADMINISTRATION"),
	lbl(22, "MILITARY"),
	unl(23),
)
