package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/zostay/go-email-template/resource"
	"github.com/zostay/go-email-template/rte"
	"github.com/zostay/go-email-template/rte/gotmpl"
	"github.com/zostay/go-email-template/template"
)

var (
	dataFile string
	domain   string
)

var renderCmd = &cobra.Command{
	Use:   "render <template-id>",
	Short: "Render one template id with JSON data and print the parts",
	Args:  cobra.ExactArgs(1),
	RunE:  RunRender,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the template ids found in the templates directory",
	Args:  cobra.NoArgs,
	RunE:  RunList,
}

func init() {
	renderCmd.Flags().StringVarP(&dataFile, "data", "d", "",
		"JSON file with the data the template is rendered with")
	renderCmd.Flags().StringVar(&domain, "domain", "preview.localhost",
		"domain used on generated content ids")
	rootCmd.AddCommand(renderCmd, listCmd)
}

// buildEngine registers every subdirectory of the templates directory as
// a template id.
func buildEngine() (*rte.Engine, error) {
	entries, err := os.ReadDir(templatesDir)
	if err != nil {
		return nil, fmt.Errorf("reading templates directory: %w", err)
	}

	settings := template.DefaultSettings()
	engine := rte.New(gotmpl.New())
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		spec, err := template.FromDir(settings, filepath.Join(templatesDir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("discovering template %q: %w", entry.Name(), err)
		}

		engine.Register(entry.Name(), spec)
	}

	return engine, nil
}

func RunList(cmd *cobra.Command, _ []string) error {
	entries, err := os.ReadDir(templatesDir)
	if err != nil {
		return fmt.Errorf("reading templates directory: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			fmt.Println(entry.Name())
		}
	}
	return nil
}

func RunRender(cmd *cobra.Command, args []string) error {
	id := args[0]

	var data any
	if dataFile != "" {
		bs, err := os.ReadFile(dataFile)
		if err != nil {
			return fmt.Errorf("reading data file: %w", err)
		}
		if err := json.Unmarshal(bs, &data); err != nil {
			return fmt.Errorf("decoding data file: %w", err)
		}
	}

	engine, err := buildEngine()
	if err != nil {
		return err
	}

	gen := resource.UUIDGenerator{Domain: domain}
	bodies, atts, err := engine.Templates(cmd.Context(), gen, id, data)
	if err != nil {
		return err
	}

	for i, body := range bodies {
		log.Info("rendered alternative",
			"index", i,
			"media-type", body.Body.MediaType().String(),
			"embeddings", len(body.Embeddings))

		for name, emb := range body.Embeddings {
			log.Info("embedding",
				"name", name,
				"cid", emb.ContentID().String(),
				"media-type", emb.Resource().MediaType().String())
		}

		rc, err := body.Body.Open()
		if err != nil {
			return err
		}
		if _, err := io.Copy(os.Stdout, rc); err != nil {
			_ = rc.Close()
			return err
		}
		if err := rc.Close(); err != nil {
			return err
		}
		fmt.Println()
	}

	for _, att := range atts {
		log.Info("attachment",
			"name", att.Resource().Name(),
			"media-type", att.Resource().MediaType().String())
	}

	return nil
}
