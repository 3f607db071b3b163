package gui

import "github.com/cronusdmd/easy-gui-template/geom"

// tooltipOffset keeps the tooltip clear of the pointer.
var tooltipOffset = geom.V2(16, 16)

// ShowTooltip shows content in a floating region at the mouse position
// (if any). Tooltip regions never receive clicks and paint above all
// interactive tiers.
func ShowTooltip(ctx *Context, addContents func(*Ui)) {
	mouse := ctx.Input().Mouse
	if !mouse.HasPos {
		return
	}
	ShowPopup(ctx, TooltipID(), mouse.Pos.Add(tooltipOffset), addContents)
}

// ShowPopup shows a pop-over region pinned at pos on the tooltip tier.
func ShowPopup(ctx *Context, id ID, pos geom.Pos2, addContents func(*Ui)) Response {
	return NewArea(id).
		Order(OrderTooltip).
		FixedPos(pos).
		Interactable(false).
		Show(ctx, addContents)
}
