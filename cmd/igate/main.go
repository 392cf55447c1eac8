// Command igate brings up the WiFi uplink of an APRS iGate and serves its
// connectivity status.
//
// On a host the radio is simulated: the reachable networks come from
// IGATE_SIM_NETWORKS, in the same "ssid=password" form as IGATE_WIFI_APS.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/merliot/igate"
	"github.com/merliot/igate/config"
	"github.com/merliot/igate/wifi"
)

func main() {
	path := flag.String("config", config.GetEnv("IGATE_CONFIG", "igate.json"), "config file")
	flag.Parse()

	cfg, err := config.Load(*path)
	if err != nil {
		fmt.Printf("Config: %s\r\n", err.Error())
		os.Exit(1)
	}

	dev := newDevice()
	mgr := wifi.NewManager(cfg.WiFiConfig(), dev.stack, dev.display)
	dev.attach(mgr)

	status := igate.NewStatus()

	if cfg.Status.Listen != "" {
		server := igate.NewServer(cfg.Status.Listen, status)
		server.BasicAuth(cfg.Status.User, cfg.Status.Password)
		go func() {
			fmt.Printf("Status server listening on %s\r\n", server.Addr)
			if err := server.ListenAndServe(); err != nil {
				fmt.Printf("Status server: %s\r\n", err.Error())
			}
		}()
		dev.serve(server)
	}

	if cfg.Status.Broker != "" {
		mqtt := igate.DialMQTT(cfg.Status.Broker, cfg.Callsign, status.Bus())
		defer mqtt.Close()
	}

	runner := igate.NewRunner(mgr, status)
	ctx, stop := dev.context()
	defer stop()
	runner.Run(ctx)
}
