// Package tray shows a gui.Panel as a system tray menu.
package tray

import (
	"fmt"
	"reflect"

	"github.com/getlantern/systray"
	"github.com/sirupsen/logrus"

	"go.ngs.io/r134a-api/internal/gui"
)

var presets = []float64{-40, -20, 0, 25, 50, 75, 100}

type stepItem struct {
	item  *systray.MenuItem
	delta float64
}

type presetItem struct {
	item    *systray.MenuItem
	celsius float64
}

// Run blocks until the user quits from the menu.
func Run(panel *gui.Panel, refrigerant string) {
	systray.Run(func() { onReady(panel, refrigerant) }, onExit)
}

func onReady(panel *gui.Panel, refrigerant string) {
	systray.SetTitle(refrigerant)
	systray.SetTooltip(fmt.Sprintf("%s saturation properties", refrigerant))

	mInput := systray.AddMenuItem("", "Saturation temperature")
	mInput.Disable()

	steps := []stepItem{
		{systray.AddMenuItem("+1 °C", "Increase temperature by 1 °C"), 1},
		{systray.AddMenuItem("-1 °C", "Decrease temperature by 1 °C"), -1},
		{systray.AddMenuItem("+10 °C", "Increase temperature by 10 °C"), 10},
		{systray.AddMenuItem("-10 °C", "Decrease temperature by 10 °C"), -10},
	}

	mPresets := systray.AddMenuItem("Presets", "Set a common temperature")
	var presetItems []presetItem
	for _, c := range presets {
		presetItems = append(presetItems, presetItem{
			item:    mPresets.AddSubMenuItem(fmt.Sprintf("%g °C", c), ""),
			celsius: c,
		})
	}

	mCalculate := systray.AddMenuItem("Calculate", "Evaluate the saturation properties")

	systray.AddSeparator()

	mPressure := systray.AddMenuItem("", "Saturation pressure")
	mHL := systray.AddMenuItem("", "Saturated liquid enthalpy")
	mHV := systray.AddMenuItem("", "Saturated vapor enthalpy")
	mLatent := systray.AddMenuItem("", "Latent heat of vaporization")
	mMessage := systray.AddMenuItem("", "")
	for _, m := range []*systray.MenuItem{mPressure, mHL, mHV, mLatent, mMessage} {
		m.Disable()
	}

	systray.AddSeparator()
	mQuit := systray.AddMenuItem("Quit", "Quit the whole app")

	showInput := func() {
		mInput.SetTitle(fmt.Sprintf("Temperature: %s °C", panel.Input()))
	}
	render := func(v gui.View) {
		mPressure.SetTitle("P: " + orDash(v.Pressure) + " kPa")
		mHL.SetTitle("HL: " + orDash(v.HL) + " kJ/kg")
		mHV.SetTitle("HV: " + orDash(v.HV) + " kJ/kg")
		mLatent.SetTitle("HV-HL: " + orDash(v.LatentHeat) + " kJ/kg")
		if v.Message != "" {
			mMessage.SetTitle(v.Message)
			mMessage.Show()
		} else {
			mMessage.Hide()
		}
	}

	showInput()
	render(panel.Trigger())

	// All clicks are handled on this goroutine, so the panel needs no lock.
	cases := make([]reflect.SelectCase, 0, len(steps)+len(presetItems)+2)
	addCase := func(m *systray.MenuItem) {
		cases = append(cases, reflect.SelectCase{Dir: reflect.SelectRecv, Chan: reflect.ValueOf(m.ClickedCh)})
	}
	for _, s := range steps {
		addCase(s.item)
	}
	for _, p := range presetItems {
		addCase(p.item)
	}
	addCase(mCalculate)
	addCase(mQuit)

	go func() {
		for {
			chosen, _, _ := reflect.Select(cases)
			switch {
			case chosen < len(steps):
				panel.Step(steps[chosen].delta)
				showInput()
			case chosen < len(steps)+len(presetItems):
				p := presetItems[chosen-len(steps)]
				panel.SetInput(fmt.Sprintf("%g", p.celsius))
				showInput()
			case chosen == len(cases)-2:
				v := panel.Trigger()
				logrus.WithField("input", panel.Input()).Debugf("calculated: %+v", v)
				render(v)
			default:
				systray.Quit()
				return
			}
		}
	}()
}

func onExit() {
	logrus.Info("gui exiting")
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
