package client

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	apiclient "github.com/Alijeyrad/sorriso_backend/pkg/client"
	"github.com/Alijeyrad/sorriso_backend/pkg/diary"
)

func newPatientsCommand(newAPI apiFactory) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "patients",
		Short: "List, register and remove patients",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List patients",
		RunE: func(cmd *cobra.Command, args []string) error {
			api, err := newAPI(cmd)
			if err != nil {
				return err
			}
			patients, err := api.ListPatients(cmd.Context())
			if err != nil {
				return err
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.SetHeader([]string{"ID", "Nome", "Sexo", "Nascimento", "Perfil clínico"})
			for _, p := range patients {
				profile := "não"
				if p.ClinicalProfile != nil {
					profile = "sim"
				}
				table.Append([]string{p.ID, p.Name, string(p.Sex), apiclient.FormatDateLabel(p.BirthDate), profile})
			}
			table.Render()
			return nil
		},
	})

	cmd.AddCommand(newCreatePatientCommand(newAPI))

	cmd.AddCommand(&cobra.Command{
		Use:   "delete <patient-id>",
		Short: "Remove a patient and all of their records",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			api, err := newAPI(cmd)
			if err != nil {
				return err
			}
			res, err := api.DeletePatient(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Println(res.Message)
			return nil
		},
	})

	return cmd
}

func newCreatePatientCommand(newAPI apiFactory) *cobra.Command {
	var in apiclient.NewPatient
	var sex, diagnosis, cid string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Register a patient",
		RunE: func(cmd *cobra.Command, args []string) error {
			api, err := newAPI(cmd)
			if err != nil {
				return err
			}
			in.Sex = diary.Sex(sex)
			in.ClinicalProfile = &diary.ClinicalProfile{MainDiagnosis: diagnosis, CID: cid}

			p, err := api.CreatePatient(cmd.Context(), in)
			if err != nil {
				return err
			}
			fmt.Printf("Paciente %s cadastrado (id %s).\n", p.Name, p.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&in.Name, "name", "", "patient name")
	cmd.Flags().StringVar(&sex, "sex", "", "feminino, masculino or outro")
	cmd.Flags().StringVar(&in.MotherName, "mother", "", "mother's name")
	cmd.Flags().StringVar(&in.BirthDate, "birth-date", "", "birth date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&in.Notes, "notes", "", "free notes")
	cmd.Flags().StringVar(&diagnosis, "diagnosis", "", "main diagnosis")
	cmd.Flags().StringVar(&cid, "cid", "", "diagnosis CID code")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}
