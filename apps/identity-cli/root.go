package main

import (
	"github.com/spf13/cobra"

	"github.com/astrixforge/Device-Masker-sub000/apps/identity-cli/internal/client"
	"github.com/astrixforge/Device-Masker-sub000/apps/identity-cli/internal/config"
	"github.com/astrixforge/Device-Masker-sub000/pkg/engine"
	"github.com/astrixforge/Device-Masker-sub000/pkg/generator"
	"github.com/astrixforge/Device-Masker-sub000/pkg/logging"
	"github.com/astrixforge/Device-Masker-sub000/pkg/refdata"
)

// app はサブコマンドが共有する依存オブジェクト。
// PersistentPreRunEで初期化される。
type app struct {
	cfg    *config.Config
	engine *engine.Engine
	api    *client.Client
	masker *logging.Masker
	seed   uint64
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   appName,
		Short: "Generate correlated device, SIM and location identifiers",
		Long: `identity-cli generates internally consistent fake identifiers.

Values in the same correlation group (SIM_CARD, DEVICE_HARDWARE, LOCATION)
are derived from one reference carrier, device preset or country, so an
IMSI always matches its carrier and an IMEI always matches its device.

Local commands use the built-in reference data (plus REFDATA_PATH).
The profile commands talk to identity-api at IDENTITY_API_URL.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	rootCmd.PersistentFlags().Uint64Var(&a.seed, "seed", 0, "Seed for reproducible local generation (0 uses a crypto random source)")

	rootCmd.AddCommand(
		newGenerateCmd(a),
		newBundleCmd(a),
		newExportCmd(a),
		newProfileCmd(a),
		newValidateCmd(a),
	)
	return rootCmd
}

// setup は設定・ロガー・エンジン・APIクライアントを準備する。
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	a.cfg = cfg

	initLogger(cmd.ErrOrStderr(), cfg)

	reg, err := refdata.LoadRegistry(cfg.RefDataPath)
	if err != nil {
		return err
	}

	rnd := generator.NewRand()
	if a.seed != 0 {
		rnd = generator.NewSeededRand(a.seed)
	}
	a.engine = engine.New(reg, rnd)
	a.api = client.NewClient(cfg)
	a.masker = logging.NewMasker(cfg.LogMaskIdentifiers)
	return nil
}

// referenceFlags は参照オブジェクトを指定するフラグ。
type referenceFlags struct {
	carrier      string
	preset       string
	country      string
	manufacturer string
}

// bind はフラグをcmdに登録する。withManufacturerがfalseの場合は--manufacturerを登録しない。
func (f *referenceFlags) bind(cmd *cobra.Command, withManufacturer bool) {
	cmd.Flags().StringVar(&f.carrier, "carrier", "", "Reference carrier MCC/MNC (e.g. 44010)")
	cmd.Flags().StringVar(&f.preset, "preset", "", "Reference device preset ID (e.g. pixel_8_pro)")
	cmd.Flags().StringVar(&f.country, "country", "", "Reference country ISO code (e.g. JP)")
	if withManufacturer {
		cmd.Flags().StringVar(&f.manufacturer, "manufacturer", "", "Manufacturer used when no preset is given (unknown names are ignored)")
	}
}

// resolve は参照データから参照オブジェクトを解決する。
func (f *referenceFlags) resolve(reg *refdata.Registry) (*engine.Reference, error) {
	ref, err := engine.ResolveReference(reg, f.carrier, f.preset, f.country)
	if err != nil {
		return nil, err
	}
	ref.Manufacturer = f.manufacturer
	return ref, nil
}

// remote はAPIに送る参照キーを返す。何も指定されていない場合はnil。
func (f *referenceFlags) remote() *client.Reference {
	ref := &client.Reference{
		Carrier:      f.carrier,
		Preset:       f.preset,
		Country:      f.country,
		Manufacturer: f.manufacturer,
	}
	if ref.IsEmpty() {
		return nil
	}
	return ref
}
