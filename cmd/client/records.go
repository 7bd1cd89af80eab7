package client

import (
	"encoding/base64"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	apiclient "github.com/Alijeyrad/sorriso_backend/pkg/client"
	"github.com/Alijeyrad/sorriso_backend/pkg/diary"
)

func newRecordsCommand(newAPI apiFactory) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "records",
		Short: "Daily diary records of a patient",
	}

	var listDate string
	list := &cobra.Command{
		Use:   "list <patient-id>",
		Short: "List records, optionally for one day",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			api, err := newAPI(cmd)
			if err != nil {
				return err
			}
			records, err := api.FetchRecords(cmd.Context(), args[0], listDate)
			if err != nil {
				return err
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.SetHeader([]string{"Data", "Humor", "Escovou", "Medo", "Dormiu bem", "Doces", "Gatilhos", "Dentes", "Foto"})
			for _, r := range records {
				triggers := lo.Map(r.Triggers, func(t diary.Trigger, _ int) string { return string(t) })
				table.Append([]string{
					apiclient.FormatDateLabel(r.Date), string(r.Mood),
					yesNo(r.Brushed), yesNo(r.Fear), yesNo(r.SleptWell), yesNo(r.AteTooMuchCandy),
					strings.Join(triggers, ", "), strconv.Itoa(len(r.Odontogram)),
					yesNo(diary.NormalizePhotoURI(r.PhotoDataURL) != ""),
				})
			}
			table.Render()
			return nil
		},
	}
	list.Flags().StringVar(&listDate, "date", "", "only records of this day (YYYY-MM-DD)")

	cmd.AddCommand(list)
	cmd.AddCommand(newAddRecordCommand(newAPI))
	cmd.AddCommand(&cobra.Command{
		Use:   "remove-tooth <patient-id> <date> <tooth-number>",
		Short: "Delete one tooth from the odontogram of a day",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[2])
			if err != nil {
				return fmt.Errorf("invalid tooth number %q", args[2])
			}
			api, err := newAPI(cmd)
			if err != nil {
				return err
			}
			res, err := api.RemoveTooth(cmd.Context(), args[0], args[1], n)
			if apiclient.IsAlreadyAbsent(err) {
				fmt.Printf("Dente %d já não consta no odontograma de %s.\n", n, apiclient.FormatDateLabel(args[1]))
				return nil
			}
			if err != nil {
				return err
			}
			fmt.Printf("Dente %d removido de %d registro(s).\n", res.ToothNumber, res.UpdatedRecords)
			return nil
		},
	})

	return cmd
}

func newAddRecordCommand(newAPI apiFactory) *cobra.Command {
	var (
		in        apiclient.NewRecord
		mood      string
		triggers  []string
		teeth     []string
		photoPath string
	)

	cmd := &cobra.Command{
		Use:   "add <patient-id>",
		Short: "Save a daily record",
		Long: `Save a daily record. Teeth are given as --tooth NUMBER[:FLAGS], where FLAGS
is a comma separated list of ausente, carie, dor and sens=<nenhuma|leve|moderada|alta>:

  sorriso client records add p1 --mood bom --brushed --tooth 3:carie,sens=leve --tooth 14:ausente`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in.Mood = diary.Mood(mood)
			in.Triggers = lo.Map(triggers, func(t string, _ int) diary.Trigger { return diary.Trigger(t) })

			for _, value := range teeth {
				tooth, err := parseTooth(value)
				if err != nil {
					return err
				}
				in.Odontogram = append(in.Odontogram, tooth)
			}

			if photoPath != "" {
				uri, err := photoDataURL(photoPath)
				if err != nil {
					return err
				}
				in.PhotoDataURL = uri
			}

			api, err := newAPI(cmd)
			if err != nil {
				return err
			}
			rec, err := api.CreateRecord(cmd.Context(), args[0], in)
			if err != nil {
				return err
			}
			fmt.Printf("Registro de %s salvo (id %s).\n", apiclient.FormatDateLabel(rec.Date), rec.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&in.Date, "date", time.Now().Format(time.DateOnly), "record date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&mood, "mood", string(diary.MoodNeutral), "muito_bom, bom, neutro or triste")
	cmd.Flags().BoolVar(&in.Brushed, "brushed", false, "teeth were brushed")
	cmd.Flags().BoolVar(&in.Fear, "fear", false, "showed fear or anxiety")
	cmd.Flags().BoolVar(&in.SleptWell, "slept-well", false, "slept well")
	cmd.Flags().BoolVar(&in.AteTooMuchCandy, "candy", false, "ate too much candy")
	cmd.Flags().StringSliceVar(&triggers, "trigger", nil, "sensory trigger (barulho, luz, cheiro, toque), repeatable")
	cmd.Flags().StringArrayVar(&teeth, "tooth", nil, "charted tooth NUMBER[:FLAGS], repeatable")
	cmd.Flags().StringVar(&photoPath, "photo", "", "image file to attach")

	return cmd
}

// parseTooth reads NUMBER[:FLAGS]. A tooth is present with no findings
// unless flags say otherwise.
func parseTooth(value string) (diary.ToothRecord, error) {
	number, flags, _ := strings.Cut(strings.TrimSpace(value), ":")
	n, err := strconv.Atoi(number)
	if err != nil || n < diary.MinToothNumber || n > diary.MaxToothNumber {
		return diary.ToothRecord{}, fmt.Errorf("invalid tooth %q: number must be %d-%d", value, diary.MinToothNumber, diary.MaxToothNumber)
	}

	tooth := diary.ToothRecord{ToothNumber: n, HasTooth: true, Sensitivity: diary.SensitivityNone}
	if flags == "" {
		return tooth, nil
	}
	for _, f := range strings.Split(flags, ",") {
		f = strings.TrimSpace(f)
		switch {
		case f == "ausente":
			tooth.HasTooth = false
		case f == "carie":
			tooth.HasCaries = true
		case f == "dor":
			tooth.HasPain = true
		case strings.HasPrefix(f, "sens="):
			s := diary.Sensitivity(strings.TrimPrefix(f, "sens="))
			if !s.Valid() {
				return diary.ToothRecord{}, fmt.Errorf("invalid tooth %q: unknown sensitivity %q", value, s)
			}
			tooth.Sensitivity = s
		default:
			return diary.ToothRecord{}, fmt.Errorf("invalid tooth %q: unknown flag %q", value, f)
		}
	}
	return tooth, nil
}

func photoDataURL(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read photo: %w", err)
	}
	mimeType := mime.TypeByExtension(strings.ToLower(filepath.Ext(path)))
	if !strings.HasPrefix(mimeType, "image/") {
		mimeType = "image/jpeg"
	}
	return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}

func yesNo(b bool) string {
	if b {
		return "sim"
	}
	return "não"
}
