package render

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/temirov/dirtree/internal/config"
	"github.com/temirov/dirtree/internal/tree"
)

const (
	treeBranchConnector = "├── "
	treeLastConnector   = "└── "
	treeBranchPrefix    = "│   "
	treeLastPrefix      = "    "

	symlinkArrow       = " -> "
	unavailableColumn  = "-"
	columnSeparator    = " "
	truncationEllipsis = "…"

	summarySeparator = ", "
	summaryFormat    = "%d %s"
)

// TextRenderer draws the tree with box-drawing connectors, a right-aligned size
// column and, for long listings, inode, link and block columns.
type TextRenderer struct {
	options Options
}

// NewTextRenderer constructs a TextRenderer.
func NewTextRenderer(options Options) *TextRenderer {
	return &TextRenderer{options: options}
}

type textFrame struct {
	id     tree.NodeID
	prefix string
	last   bool
}

// Render implements Renderer.
func (renderer *TextRenderer) Render(writer io.Writer, assembled *tree.Tree) error {
	settings := assembled.Context()
	colors := plainPalette()
	if renderer.options.Color && !settings.NoColor {
		colors = colorPalette()
	}

	buffered := bufio.NewWriter(writer)
	pending := []textFrame{{id: assembled.RootID()}}
	for len(pending) > 0 {
		lastIndex := len(pending) - 1
		frame := pending[lastIndex]
		pending = pending[:lastIndex]

		node := assembled.Node(frame.id)
		connector, childPrefix := "", ""
		if node.Depth() > 0 {
			connector = treeBranchConnector
			childPrefix = frame.prefix + treeBranchPrefix
			if frame.last {
				connector = treeLastConnector
				childPrefix = frame.prefix + treeLastPrefix
			}
		}
		line := renderer.formatLine(settings, colors, node, frame.prefix+connector)
		if _, writeError := buffered.WriteString(line + "\n"); writeError != nil {
			return writeError
		}

		if settings.Level > 0 && node.Depth() >= settings.Level {
			continue
		}
		children := assembled.Children(frame.id)
		for index := len(children) - 1; index >= 0; index-- {
			pending = append(pending, textFrame{
				id:     children[index],
				prefix: childPrefix,
				last:   index == len(children)-1,
			})
		}
	}

	if renderer.options.Footer {
		if _, writeError := buffered.WriteString("\n" + Summary(assembled.TotalFileCount()) + "\n"); writeError != nil {
			return writeError
		}
	}
	return buffered.Flush()
}

func (renderer *TextRenderer) formatLine(settings *config.Context, colors palette, node *tree.Node, branch string) string {
	var columns []string
	if settings.Long {
		for _, metadata := range []string{
			metadataColumn(node.Ino, settings.Columns.MaxInoWidth),
			metadataColumn(node.Nlink, settings.Columns.MaxNlinkWidth),
			metadataColumn(node.Blocks, settings.Columns.MaxBlockWidth),
		} {
			if metadata != "" {
				columns = append(columns, colors.metadata(metadata))
			}
		}
	}
	sizeLabel := ""
	if fileSize, hasSize := node.FileSize(); hasSize {
		sizeLabel = fileSize.UnpaddedDisplay()
	}
	columns = append(columns, colors.size(padLeft(sizeLabel, settings.Columns.MaxSizeWidth)))

	lead := strings.Join(columns, columnSeparator) + columnSeparator + branch
	name := node.Name()
	if node.IsSymlink() && node.SymlinkTarget() != "" {
		name += symlinkArrow + node.SymlinkTarget()
	}
	if settings.Truncate && settings.WindowWidth > 0 {
		available := settings.WindowWidth - runewidth.StringWidth(lead)
		if available < 1 {
			available = 1
		}
		name = runewidth.Truncate(name, available, truncationEllipsis)
	}

	switch {
	case node.IsDir():
		name = colors.directory(name)
	case node.IsSymlink():
		name = colors.symlink(name)
	}
	return lead + name
}

func metadataColumn(read func() (uint64, bool), width int) string {
	if width == 0 {
		return ""
	}
	value, available := read()
	if !available {
		return padLeft(unavailableColumn, width)
	}
	return padLeft(strconv.FormatUint(value, 10), width)
}

func padLeft(text string, width int) string {
	missing := width - runewidth.StringWidth(text)
	if missing <= 0 {
		return text
	}
	return strings.Repeat(" ", missing) + text
}

// Summary formats counts as "2 directories, 3 files, 1 link", omitting zero
// symlink counts.
func Summary(count tree.FileCount) string {
	parts := []string{
		fmt.Sprintf(summaryFormat, count.Directories, plural(count.Directories, "directory", "directories")),
		fmt.Sprintf(summaryFormat, count.Files, plural(count.Files, "file", "files")),
	}
	if count.Symlinks > 0 {
		parts = append(parts, fmt.Sprintf(summaryFormat, count.Symlinks, plural(count.Symlinks, "link", "links")))
	}
	return strings.Join(parts, summarySeparator)
}

func plural(count int, singular string, multiple string) string {
	if count == 1 {
		return singular
	}
	return multiple
}
