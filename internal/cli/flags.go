package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/temirov/dirtree/internal/config"
	"github.com/temirov/dirtree/internal/utils"
)

const (
	followFlagName    = "follow"
	noIgnoreFlagName  = "no-ignore"
	hiddenFlagName    = "hidden"
	threadsFlagName   = "threads"
	patternFlagName   = "pattern"
	globFlagName      = "glob"
	iglobFlagName     = "iglob"
	fileTypeFlagName  = "file-type"
	diskUsageFlagName = "disk-usage"
	unitFlagName      = "unit"
	humanFlagName     = "human"
	longFlagName      = "long"
	pruneFlagName     = "prune"
	dirsOnlyFlagName  = "dirs-only"
	sortFlagName      = "sort"
	dirOrderFlagName  = "dir-order"
	levelFlagName     = "level"
	truncateFlagName  = "truncate"
	formatFlagName    = "format"
	noColorFlagName   = "no-color"
	clipboardFlagName = "clipboard"
	configFlagName    = "config"
	verboseFlagName   = "verbose"
	versionFlagName   = "version"
	helpFlagName      = "help"
)

// scanFlags holds raw flag values. Only flags the user changed are applied on
// top of the configuration files.
type scanFlags struct {
	follow    bool
	noIgnore  bool
	hidden    bool
	threads   int
	pattern   string
	glob      bool
	iglob     bool
	fileType  string
	diskUsage string
	unit      string
	human     bool
	long      bool
	prune     bool
	dirsOnly  bool
	sort      string
	dirOrder  string
	level     int
	truncate  bool
	format    string
	noColor   bool
	clipboard bool

	configPath  string
	verbose     bool
	showVersion bool
}

func registerScanFlags(command *cobra.Command, flags *scanFlags) {
	flagSet := command.Flags()
	defaults := config.DefaultContext()

	// Help loses its -h shorthand to --human.
	flagSet.Bool(helpFlagName, false, "help for "+command.Name())

	for _, definition := range []struct {
		target *bool
		flag   booleanFlag
	}{
		{&flags.follow, booleanFlag{followFlagName, "f", "traverse symbolic links"}},
		{&flags.noIgnore, booleanFlag{noIgnoreFlagName, "i", "do not respect .gitignore and .ignore files"}},
		{&flags.hidden, booleanFlag{hiddenFlagName, "H", "show hidden entries"}},
		{&flags.glob, booleanFlag{globFlagName, "", "treat --pattern as a glob"}},
		{&flags.iglob, booleanFlag{iglobFlagName, "", "treat --pattern as a case-insensitive glob"}},
		{&flags.human, booleanFlag{humanFlagName, "h", "print sizes with a unit prefix"}},
		{&flags.long, booleanFlag{longFlagName, "l", "show inode, hard link and block columns"}},
		{&flags.prune, booleanFlag{pruneFlagName, "P", "remove empty directories"}},
		{&flags.dirsOnly, booleanFlag{dirsOnlyFlagName, "", "show directories only"}},
		{&flags.truncate, booleanFlag{truncateFlagName, "", "truncate lines to the terminal width"}},
		{&flags.noColor, booleanFlag{noColorFlagName, "", "disable colored output"}},
		{&flags.clipboard, booleanFlag{clipboardFlagName, "", "copy the rendered tree to the clipboard"}},
		{&flags.verbose, booleanFlag{verboseFlagName, "", "log skipped entries and scan statistics"}},
		{&flags.showVersion, booleanFlag{versionFlagName, "", "display application version"}},
	} {
		registerBooleanFlag(flagSet, definition.target, definition.flag)
	}

	flagSet.IntVarP(&flags.threads, threadsFlagName, "T", defaults.Threads, "number of walker threads")
	flagSet.StringVarP(&flags.pattern, patternFlagName, "p", "", "keep entries whose name matches this regular expression")
	flagSet.StringVarP(&flags.fileType, fileTypeFlagName, "t", "", "restrict --pattern to file, dir or link")
	flagSet.StringVarP(&flags.diskUsage, diskUsageFlagName, "d", defaults.DiskUsage.String(), "logical or physical size")
	flagSet.StringVarP(&flags.unit, unitFlagName, "u", defaults.Unit.String(), "bin or si unit prefixes")
	flagSet.StringVarP(&flags.sort, sortFlagName, "s", string(defaults.Sort), "name, rname, size, rsize, time, rtime or none")
	flagSet.StringVar(&flags.dirOrder, dirOrderFlagName, string(defaults.DirOrder), "none, first or last")
	flagSet.IntVarP(&flags.level, levelFlagName, "L", 0, "maximum depth to display (0 for unlimited)")
	flagSet.StringVar(&flags.format, formatFlagName, defaults.Format, "tree or json")
	flagSet.StringVar(&flags.configPath, configFlagName, "", "configuration file used instead of "+utils.ConfigFileName)
}

// changedConfiguration converts the flags set on the command line into a
// configuration layer that overrides the files.
func (flags *scanFlags) changedConfiguration(flagSet *pflag.FlagSet) config.TreeConfiguration {
	var layer config.TreeConfiguration
	changedBool := func(name string, value bool) *bool {
		if !flagSet.Changed(name) {
			return nil
		}
		return &value
	}
	changedInt := func(name string, value int) *int {
		if !flagSet.Changed(name) {
			return nil
		}
		return &value
	}
	changedString := func(name string, value string) string {
		if !flagSet.Changed(name) {
			return ""
		}
		return value
	}

	layer.Follow = changedBool(followFlagName, flags.follow)
	layer.NoIgnore = changedBool(noIgnoreFlagName, flags.noIgnore)
	layer.Hidden = changedBool(hiddenFlagName, flags.hidden)
	layer.Threads = changedInt(threadsFlagName, flags.threads)
	layer.Glob = changedBool(globFlagName, flags.glob)
	layer.IGlob = changedBool(iglobFlagName, flags.iglob)
	layer.Human = changedBool(humanFlagName, flags.human)
	layer.Long = changedBool(longFlagName, flags.long)
	layer.Prune = changedBool(pruneFlagName, flags.prune)
	layer.DirsOnly = changedBool(dirsOnlyFlagName, flags.dirsOnly)
	layer.Level = changedInt(levelFlagName, flags.level)
	layer.Truncate = changedBool(truncateFlagName, flags.truncate)
	layer.NoColor = changedBool(noColorFlagName, flags.noColor)
	layer.Clipboard = changedBool(clipboardFlagName, flags.clipboard)
	if flagSet.Changed(patternFlagName) {
		pattern := flags.pattern
		layer.Pattern = &pattern
	}
	layer.FileType = changedString(fileTypeFlagName, flags.fileType)
	layer.DiskUsage = changedString(diskUsageFlagName, flags.diskUsage)
	layer.Unit = changedString(unitFlagName, flags.unit)
	layer.Sort = changedString(sortFlagName, flags.sort)
	layer.DirOrder = changedString(dirOrderFlagName, flags.dirOrder)
	layer.Format = changedString(formatFlagName, flags.format)
	return layer
}
