package interactive

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (it *Model) View() string {
	if it.quitting {
		return ""
	}
	sections := []string{
		it.viewHeader(),
		it.viewBody(),
		it.viewStatus(),
	}
	if it.typing {
		sections = append(sections, it.command.View())
	} else {
		sections = append(sections, it.viewHelp())
	}
	return strings.Join(sections, "\n")
}

func (it *Model) viewHeader() string {
	page := it.page()
	title := it.styles.Title.Render(fmt.Sprintf("appdraft · %s", it.session.name))
	where := it.styles.Subtitle.Render(fmt.Sprintf("%s (%s)", page.Name, page.Route))
	pages := it.styles.Subtle.Render(fmt.Sprintf("page %d/%d", it.session.pageAt+1, len(it.session.proj.Pages)))
	return it.styles.Header.Width(max(it.width-1, 40)).Render(title + "  " + where + "  " + pages)
}

func (it *Model) viewBody() string {
	tree := it.viewTree()
	if !it.palette {
		return tree
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tree, " ", it.viewPalette())
}

func (it *Model) viewTree() string {
	lines := []string{it.styles.PanelTitle.Render("Components")}
	for at, entry := range it.rows {
		indent := strings.Repeat("  ", entry.depth)
		label := fmt.Sprintf("%2d %s%s", at, indent, entry.node.Kind)
		if props := summarize(entry.node.Props); props != "" {
			label += " " + it.styles.TreeProps.Render(props)
		}
		style := it.styles.TreeNode
		if at == it.cursor && !it.palette {
			style = it.styles.TreeCursor
			label = "> " + label
		} else {
			label = "  " + label
		}
		lines = append(lines, style.Render(label))
	}
	return it.styles.Panel.Render(strings.Join(lines, "\n"))
}

func (it *Model) viewPalette() string {
	lines := []string{it.styles.PanelTitle.Render("Add widget")}
	for at, kind := range it.kinds {
		if at == it.pick {
			lines = append(lines, it.styles.PalettePick.Render("> "+kind))
		} else {
			lines = append(lines, it.styles.PaletteItem.Render("  "+kind))
		}
	}
	return it.styles.Panel.Render(strings.Join(lines, "\n"))
}

func (it *Model) viewStatus() string {
	text := it.status
	if it.session.Dirty() {
		text += "  [unsaved]"
	}
	if it.trouble {
		return it.styles.ErrorBar.Render(text)
	}
	return it.styles.StatusBar.Render(text)
}

func (it *Model) viewHelp() string {
	parts := []string{}
	for _, hint := range it.shortHelp() {
		key, desc, found := strings.Cut(hint, " ")
		if found {
			parts = append(parts, it.styles.MenuKey.Render(key)+" "+it.styles.MenuDesc.Render(desc))
		} else {
			parts = append(parts, it.styles.MenuDesc.Render(hint))
		}
	}
	return strings.Join(parts, "  ")
}
