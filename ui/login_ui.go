package ui

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/automoto/emberveil/shared/messages"
	"github.com/automoto/emberveil/shared/netconfig"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCase = cases.Title(language.AmericanEnglish)

// LoginUI is the connect and character select screen.
type LoginUI struct {
	UI *ebitenui.UI

	OnConnect func(address, account string)
	OnSelect  func(id uint32)
	OnCreate  func(name, class string)

	addressInput *widget.TextInput
	accountInput *widget.TextInput
	connectBtn   *widget.Button
	statusLabel  *widget.Label

	content        *widget.Container
	characterPanel *widget.Container
	characterList  *widget.Container
	newNameInput   *widget.TextInput
	classLabel     *widget.Label
	classIndex     int
	showing        bool

	// Last used values, shown as placeholders and used when left blank.
	lastAddress string
	lastAccount string

	faces faces
}

// NewLoginUI builds the screen prefilled with the last used server and name.
func NewLoginUI(address, account string) *LoginUI {
	if address == "" {
		address = fmt.Sprintf("localhost:%d", netconfig.DefaultPort)
	}
	ui := &LoginUI{faces: loadFaces(), lastAddress: address, lastAccount: account}
	ui.buildUI()
	return ui
}

func (ui *LoginUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{14, 12, 18, 255})),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	content := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(12)),
			widget.RowLayoutOpts.Spacing(8),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)
	ui.content = content

	content.AddChild(label("EMBERVEIL", &ui.faces.title, color.RGBA{255, 170, 80, 255}))
	content.AddChild(ui.buildConnectPanel())

	ui.statusLabel = label("", &ui.faces.small, statusColor)
	content.AddChild(ui.statusLabel)

	ui.characterPanel = ui.buildCharacterPanel()

	rootContainer.AddChild(content)
	ui.UI = &ebitenui.UI{Container: rootContainer}
}

func (ui *LoginUI) buildConnectPanel() *widget.Container {
	padding := widget.Insets{Top: 6, Bottom: 6, Left: 8, Right: 8}
	panel := column(6, &padding, color.RGBA{30, 28, 40, 255})

	addrRow := row(6)
	addrRow.AddChild(label("Server: ", &ui.faces.normal, textDim))
	ui.addressInput = textInput(&ui.faces.normal, 180, ui.lastAddress)
	addrRow.AddChild(ui.addressInput)
	panel.AddChild(addrRow)

	nameRow := row(6)
	nameRow.AddChild(label("Account:", &ui.faces.normal, textDim))
	placeholder := ui.lastAccount
	if placeholder == "" {
		placeholder = "your name"
	}
	ui.accountInput = textInput(&ui.faces.normal, 180, placeholder)
	nameRow.AddChild(ui.accountInput)
	panel.AddChild(nameRow)

	ui.connectBtn = button("Connect", &ui.faces.normal, 120, 26, color.RGBA{40, 100, 40, 255}, func() {
		account := strings.TrimSpace(ui.accountInput.GetText())
		if account == "" {
			account = ui.lastAccount
		}
		if account == "" {
			ui.SetStatus("Enter an account name")
			return
		}
		if ui.OnConnect != nil {
			ui.OnConnect(ui.address(), account)
		}
	})
	panel.AddChild(ui.connectBtn)
	return panel
}

func (ui *LoginUI) buildCharacterPanel() *widget.Container {
	padding := widget.Insets{Top: 6, Bottom: 6, Left: 8, Right: 8}
	panel := column(6, &padding, color.RGBA{30, 28, 40, 255})

	panel.AddChild(label("Characters", &ui.faces.normal, textIdle))
	ui.characterList = column(4, widget.NewInsetsSimple(0), nil)
	panel.AddChild(ui.characterList)

	createRow := row(6)
	ui.newNameInput = textInput(&ui.faces.normal, 120, "new character")
	createRow.AddChild(ui.newNameInput)
	ui.classLabel = label(titleCase.String(netconfig.Classes[0]), &ui.faces.small, textIdle)
	createRow.AddChild(ui.classLabel)
	createRow.AddChild(button("Class >", &ui.faces.small, 56, 22, color.RGBA{70, 60, 100, 255}, ui.cycleClass))
	createRow.AddChild(button("Create", &ui.faces.small, 60, 22, color.RGBA{100, 70, 30, 255}, func() {
		name := strings.TrimSpace(ui.newNameInput.GetText())
		if name == "" {
			ui.SetStatus("Name the new character")
			return
		}
		if ui.OnCreate != nil {
			ui.OnCreate(name, netconfig.Classes[ui.classIndex])
		}
	}))
	panel.AddChild(createRow)
	return panel
}

func (ui *LoginUI) cycleClass() {
	ui.classIndex = (ui.classIndex + 1) % len(netconfig.Classes)
	ui.classLabel.Label = titleCase.String(netconfig.Classes[ui.classIndex])
}

func (ui *LoginUI) address() string {
	addr := strings.TrimSpace(ui.addressInput.GetText())
	if addr == "" {
		return ui.lastAddress
	}
	if !strings.Contains(addr, ":") {
		addr = fmt.Sprintf("%s:%d", addr, netconfig.DefaultPort)
	}
	return addr
}

// SetCharacters shows the character list and rebuilds one button per
// character.
func (ui *LoginUI) SetCharacters(list []messages.CharacterSummary) {
	ui.characterList.RemoveChildren()
	for _, c := range list {
		id := c.ID
		text := fmt.Sprintf("%s  lv %d %s", c.Name, c.Level, titleCase.String(c.Class))
		ui.characterList.AddChild(button(text, &ui.faces.normal, 220, 24, color.RGBA{50, 60, 90, 255}, func() {
			if ui.OnSelect != nil {
				ui.OnSelect(id)
			}
		}))
	}
	if len(list) == 0 {
		ui.characterList.AddChild(label("No characters yet", &ui.faces.small, textDim))
	}
	if !ui.showing {
		ui.content.AddChild(ui.characterPanel)
		ui.showing = true
	}
}

// HideCharacters goes back to the connect-only view.
func (ui *LoginUI) HideCharacters() {
	if ui.showing {
		ui.content.RemoveChild(ui.characterPanel)
		ui.showing = false
	}
}

func (ui *LoginUI) SetStatus(msg string) {
	if ui.statusLabel != nil {
		ui.statusLabel.Label = msg
	}
}

func (ui *LoginUI) SetConnecting(connecting bool) {
	if ui.connectBtn != nil {
		ui.connectBtn.GetWidget().Disabled = connecting
	}
}

func (ui *LoginUI) Update() {
	ui.UI.Update()
}
