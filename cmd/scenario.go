package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hhfp/household-projector/internal/config"
	"github.com/hhfp/household-projector/internal/store"
)

var scenarioCmd = &cobra.Command{
	Use:   "scenario",
	Short: "Save, load, and list stored household profiles",
}

var scenarioSaveCmd = &cobra.Command{
	Use:   "save NAME",
	Short: "Save the --input profile under a name",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		profile, err := loadProfile()
		if err != nil {
			return err
		}
		return withStore(func(s *store.ScenarioStore) error {
			if err := s.Save(args[0], profile); err != nil {
				return err
			}
			fmt.Printf("saved scenario %q\n", args[0])
			return nil
		})
	},
}

var scenarioLoadCmd = &cobra.Command{
	Use:   "load NAME",
	Short: "Print a stored profile as YAML",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return withStore(func(s *store.ScenarioStore) error {
			profile, err := s.Load(args[0])
			if err != nil {
				return err
			}
			body, err := config.Marshal(profile)
			if err != nil {
				return err
			}
			_, err = os.Stdout.Write(body)
			return err
		})
	},
}

var scenarioListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored scenarios",
	RunE: func(_ *cobra.Command, _ []string) error {
		return withStore(func(s *store.ScenarioStore) error {
			infos, err := s.List()
			if err != nil {
				return err
			}
			if len(infos) == 0 {
				fmt.Println("no scenarios stored")
				return nil
			}
			for _, info := range infos {
				fmt.Printf("%-30s %s\n", info.Name, info.UpdatedAt.Format("2006-01-02 15:04"))
			}
			return nil
		})
	},
}

var scenarioDeleteCmd = &cobra.Command{
	Use:   "delete NAME",
	Short: "Delete a stored scenario",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return withStore(func(s *store.ScenarioStore) error {
			return s.Delete(args[0])
		})
	},
}

func init() {
	scenarioCmd.AddCommand(scenarioSaveCmd, scenarioLoadCmd, scenarioListCmd, scenarioDeleteCmd)
	rootCmd.AddCommand(scenarioCmd)
}

func withStore(fn func(*store.ScenarioStore) error) error {
	s, err := store.Open(flagDB)
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()
	return fn(s)
}
