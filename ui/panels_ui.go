package ui

import (
	cfg "github.com/automoto/emberveil/config"
	"github.com/automoto/emberveil/hud"
	"github.com/automoto/emberveil/uistate"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
)

// PanelsUI renders the open panel. It holds no state of its own: every
// model revision discards the widget tree and builds a new one.
type PanelsUI struct {
	UI *ebitenui.UI

	// OnSlot is called when a slot is clicked or tapped.
	OnSlot func(area uistate.Area, index int)

	revision int
	faces    faces
}

func NewPanelsUI(onSlot func(area uistate.Area, index int)) *PanelsUI {
	p := &PanelsUI{OnSlot: onSlot, revision: -1, faces: loadFaces()}
	p.UI = &ebitenui.UI{Container: widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))}
	return p
}

// Sync rebuilds the widgets when the model revision moved.
func (p *PanelsUI) Sync(m hud.Model, revision int) {
	if revision == p.revision {
		return
	}
	p.revision = revision
	p.UI.Container = p.build(m)
}

func (p *PanelsUI) Update() {
	p.UI.Update()
}

func (p *PanelsUI) build(m hud.Model) *widget.Container {
	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	if m.Panel == uistate.PanelNone {
		return root
	}

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.UI.PanelBg)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(8)),
			widget.RowLayoutOpts.Spacing(6),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)
	panel.AddChild(label(titleCase.String(m.Panel.String()), &p.faces.title, cfg.UI.TextColor))

	switch m.Panel {
	case uistate.PanelInventory:
		p.grid(panel, m.Inventory, uistate.AreaInventory, "Inventory is empty")
		panel.AddChild(label("Confirm: equip / use   Secondary: drop", &p.faces.small, cfg.UI.DimText))
	case uistate.PanelCharacter:
		p.character(panel, m)
	case uistate.PanelShop:
		panel.AddChild(label("Gold: "+m.Gold, &p.faces.normal, cfg.UI.DimText))
		p.grid(panel, m.Shop, uistate.AreaShop, "Nothing for sale")
	case uistate.PanelCrafting:
		p.list(panel, m.Crafting, uistate.AreaCrafting, "No known recipes")
	}

	root.AddChild(panel)
	return root
}

func (p *PanelsUI) character(panel *widget.Container, m hud.Model) {
	header := m.Name
	if m.Class != "" {
		header += ", " + m.Class
	}
	panel.AddChild(label(header, &p.faces.normal, cfg.UI.TextColor))

	equip := row(cfg.UI.SlotSpacing)
	for i, s := range m.Equipment[:min(uistate.EquipmentSlots, len(m.Equipment))] {
		equip.AddChild(p.slot(s, uistate.AreaEquipment, i, 64))
	}
	panel.AddChild(equip)

	stats := row(cfg.UI.SlotSpacing)
	for i := uistate.EquipmentSlots; i < len(m.Equipment); i++ {
		stats.AddChild(p.slot(m.Equipment[i], uistate.AreaEquipment, i, 96))
	}
	panel.AddChild(stats)

	if m.StatPoints > 0 {
		panel.AddChild(label("Unspent points available", &p.faces.small, cfg.UI.StaleColor))
	}
	for _, rows := range [][]hud.Row{m.Stats, m.Derived} {
		line := row(12)
		for _, r := range rows {
			line.AddChild(label(r.Label+": "+r.Value, &p.faces.small, cfg.UI.DimText))
		}
		panel.AddChild(line)
	}
}

// grid lays slots out in rows of uistate.GridColumns, matching the
// navigation layout.
func (p *PanelsUI) grid(panel *widget.Container, slots []hud.Slot, area uistate.Area, empty string) {
	if len(slots) == 0 {
		panel.AddChild(label(empty, &p.faces.small, cfg.UI.DimText))
		return
	}
	var line *widget.Container
	for i, s := range slots {
		if i%uistate.GridColumns == 0 {
			line = row(cfg.UI.SlotSpacing)
			panel.AddChild(line)
		}
		line.AddChild(p.slot(s, area, i, 56))
	}
}

func (p *PanelsUI) list(panel *widget.Container, slots []hud.Slot, area uistate.Area, empty string) {
	if len(slots) == 0 {
		panel.AddChild(label(empty, &p.faces.small, cfg.UI.DimText))
		return
	}
	for i, s := range slots {
		panel.AddChild(p.slot(s, area, i, 260))
	}
}

func (p *PanelsUI) slot(s hud.Slot, area uistate.Area, index, width int) *widget.Button {
	bg := cfg.UI.SlotBg
	switch {
	case s.Focused:
		bg = cfg.UI.SlotFocused
	case s.Empty || !s.Enabled:
		bg = cfg.UI.SlotDisabled
	}
	text := s.Label
	if s.Detail != "" {
		text += " " + s.Detail
	}
	face := &p.faces.small
	return button(text, face, width, cfg.UI.SlotSize, bg, func() {
		if p.OnSlot != nil {
			p.OnSlot(area, index)
		}
	})
}
