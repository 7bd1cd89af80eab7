package client

import (
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	apiclient "github.com/Alijeyrad/sorriso_backend/pkg/client"
	"github.com/Alijeyrad/sorriso_backend/pkg/diary"
)

func newProgressCommand(newAPI apiFactory) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "progress <patient-id>",
		Short: "Show progress indicators computed from the patient's records",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			api, err := newAPI(cmd)
			if err != nil {
				return err
			}
			p, err := api.Progress(cmd.Context(), args[0], date)
			if err != nil {
				return err
			}
			renderProgress(p)
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "restrict to one day (YYYY-MM-DD)")
	return cmd
}

func renderProgress(p *apiclient.Progress) {
	scope := "Histórico completo"
	if p.Filter != "" {
		scope = "Dia " + apiclient.FormatDateLabel(p.Filter)
	}
	fmt.Println(scope)

	r := p.Report
	if r.Period != nil {
		fmt.Printf("Período: %s a %s\n", apiclient.FormatDateLabel(r.Period.Start), apiclient.FormatDateLabel(r.Period.End))
	}

	indicators := tablewriter.NewWriter(os.Stdout)
	indicators.SetHeader([]string{"Indicador", "Valor"})
	indicators.AppendBulk([][]string{
		{"Registros", strconv.Itoa(r.TotalRecords)},
		{"Escovação", pct(r.BrushingFrequency)},
		{"Episódios de ansiedade", strconv.Itoa(r.AnxietyEpisodes)},
		{"Cooperação média", pct(r.CooperationAverage)},
		{"Excesso de doces", pct(r.UnhealthyFoodFrequency)},
		{"Sono de qualidade", pct(r.SleepQualityFrequency)},
	})
	for _, t := range diary.Triggers {
		if n := r.TriggerCounts[t]; n > 0 {
			indicators.Append([]string{"Gatilho: " + string(t), strconv.Itoa(n)})
		}
	}
	indicators.Render()

	o := p.Odontogram
	teeth := tablewriter.NewWriter(os.Stdout)
	teeth.SetHeader([]string{"Odontograma", "Total", "Dentes"})
	teeth.AppendBulk([][]string{
		{"Selecionados", strconv.Itoa(o.TotalTeeth), joinInts(o.SelectedTeeth)},
		{"Cárie", strconv.Itoa(o.CariesCount), joinInts(o.TeethWithCaries)},
		{"Dor", strconv.Itoa(o.PainCount), joinInts(o.TeethWithPain)},
		{"Ausentes", strconv.Itoa(o.MissingCount), joinInts(o.MissingTeeth)},
	})
	teeth.Render()

	if len(p.Photos) > 0 {
		fmt.Printf("Fotos: %s\n", strings.Join(lo.Map(p.Photos, func(ph apiclient.PhotoItem, _ int) string {
			return ph.DateLabel
		}), ", "))
	}
}

func pct(n int) string {
	return strconv.Itoa(n) + "%"
}

func joinInts(values []int) string {
	sorted := slices.Clone(values)
	slices.Sort(sorted)
	return strings.Join(lo.Map(sorted, func(n int, _ int) string { return strconv.Itoa(n) }), ", ")
}
