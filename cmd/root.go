package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/RyanBlaney/scale-sonar/logging"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "scale-sonar",
	Short: "Musical scale classification for MIDI performances",
	Long: `scale-sonar matches the pitch-class content of a passage against a
syllabus of jazz scale templates and reports the best-fitting scale.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		l := logrus.New()
		if verbose {
			l.SetLevel(logrus.DebugLevel)
		}
		logging.SetGlobalLogger(logging.NewLogrusLogger(l))
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
