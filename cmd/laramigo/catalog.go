package main

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"lar-amigo/internal/domain/pets"
	"lar-amigo/internal/platform/httpclient"
)

type searchResult struct {
	Items         []pets.PetResponse `json:"items"`
	Total         int                `json:"total"`
	ActiveFilters bool               `json:"active_filters"`
}

// --- search ---

func newSearchCmd(c *cli) *cobra.Command {
	var species, size, age, gender []string

	cmd := &cobra.Command{
		Use:   "search [texto]",
		Short: "Buscar mascotas por nombre/raza y filtros",
		Long: `Buscar mascotas del catálogo.

Examples:
  laramigo search
  laramigo search labrador
  laramigo search --species gato --size pequeno
  laramigo search --age filhote,adulto --gender fêmea`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			q := url.Values{}
			if len(args) == 1 {
				q.Set("q", args[0])
			}
			for dim, values := range map[pets.Dimension][]string{
				pets.DimensionSpecies: species,
				pets.DimensionSize:    size,
				pets.DimensionAge:     age,
				pets.DimensionGender:  gender,
			} {
				for _, v := range values {
					q.Add(string(dim), v)
				}
			}

			client, err := c.client()
			if err != nil {
				return err
			}

			var res searchResult
			if err := client.Get(cmd.Context(), "/pets", q, &res); err != nil {
				if httpclient.IsStatus(err, http.StatusBadRequest) {
					return fmt.Errorf("filtro inválido")
				}
				return err
			}

			printPets(cmd.OutOrStdout(), res.Items)
			fmt.Fprintf(cmd.OutOrStdout(), "%d resultado(s)\n", res.Total)
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&species, "species", nil, "cachorro, gato")
	cmd.Flags().StringSliceVar(&size, "size", nil, "pequeno, médio, grande")
	cmd.Flags().StringSliceVar(&age, "age", nil, "filhote, adulto, idoso")
	cmd.Flags().StringSliceVar(&gender, "gender", nil, "macho, fêmea")
	return cmd
}

// --- pet ---

func newPetCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "pet <id>",
		Short: "Mostrar el perfil de una mascota",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := c.client()
			if err != nil {
				return err
			}

			var p pets.PetResponse
			if err := client.Get(cmd.Context(), "/pets/"+url.PathEscape(args[0]), nil, &p); err != nil {
				if httpclient.IsStatus(err, http.StatusNotFound) {
					return fmt.Errorf("mascota %q no encontrada", args[0])
				}
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s (%s)\n", p.Name, p.ID)
			fmt.Fprintf(out, "  %s · %s · %s · %s · %s\n", p.Species, p.Breed, p.Age, p.Size, p.Gender)
			if p.Description != "" {
				fmt.Fprintf(out, "  %s\n", p.Description)
			}
			return nil
		},
	}
}

func printPets(w io.Writer, items []pets.PetResponse) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNOME\tESPÉCIE\tRAÇA\tIDADE\tPORTE\tSEXO")
	for _, p := range items {
		fmt.Fprintln(tw, strings.Join([]string{
			p.ID, p.Name, string(p.Species), p.Breed, string(p.Age), string(p.Size), string(p.Gender),
		}, "\t"))
	}
	_ = tw.Flush()
}
