package video

import (
	"fmt"

	"photon/hal"
	"photon/video/multiboot"
	"photon/video/vbe"
)

// MultibootProbe probes the framebuffer the bootloader initialized. The
// mapper decides how the reported physical range becomes addressable; on a
// flat-mapped kernel that is hal.IdentityMapper.
func MultibootProbe(info *multiboot.Info, mapper hal.RegionMapper) ProbeFn {
	return func() (Source, error) {
		desc, _, err := info.Framebuffer()
		if err != nil {
			return Source{}, err
		}
		return Source{Name: "multiboot-lfb", Desc: desc, Mapper: mapper}, nil
	}
}

// LogVBE writes the video BIOS report to the boot log, if the bootloader
// forwarded one. Diagnostics only; detection does not depend on it.
func LogVBE(log hal.Logger, info *multiboot.Info) {
	if log == nil {
		return
	}
	mode, controlInfo, modeInfo, err := info.VBE()
	if err != nil {
		log.WriteLineString("[video] vbe: " + err.Error())
		return
	}

	if ci, err := vbe.ParseControllerInfo(controlInfo); err != nil {
		log.WriteLineString("[video] vbe controller: " + err.Error())
	} else {
		log.WriteLineString(fmt.Sprintf("[video] vbe %d.%d, %d MiB video memory",
			ci.Version>>8, ci.Version&0xFF, ci.TotalMemory/(1024*1024)))
	}

	if mi, err := vbe.ParseModeInfo(modeInfo); err != nil {
		log.WriteLineString("[video] vbe mode: " + err.Error())
	} else {
		usable := "no linear framebuffer"
		if mi.Usable() {
			usable = "linear framebuffer"
		}
		log.WriteLineString(fmt.Sprintf("[video] vbe mode %#x: %s (%s)", mode, mi, usable))
	}
}
