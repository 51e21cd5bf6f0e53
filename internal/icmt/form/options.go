package form

// Option is one choice of a select input.
type Option struct {
	Value string
	Label string
}

// TShirtSizes in display order.
var TShirtSizes = []Option{
	{Value: "XS", Label: "XS"},
	{Value: "S", Label: "S"},
	{Value: "M", Label: "M"},
	{Value: "L", Label: "L"},
	{Value: "XL", Label: "XL"},
	{Value: "XXL", Label: "XXL"},
}

// Divisions in display order.
var Divisions = []Option{
	{Value: "A", Label: "Division A"},
	{Value: "B", Label: "Division B"},
}

// Acknowledgement texts shown next to the checkboxes.
const (
	TextIDRequirement = "Required: Columbia's current security status only allows registered guests. " +
		"Please make sure to bring a government photo ID. ICMT is required to adhere to Columbia University's event/campus policies."
	TextFilming      = "I acknowledge that Numberphile will likely be filming at this event."
	TextTeamMerge    = "I understand that if I am not registering as a full team, teams may be merged."
	TextFinancialAid = "I am interested in learning more about financial aid (very limited availability)."
)
