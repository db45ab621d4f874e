// Command kexp projects memory kernels onto experience functions: it
// solves the Volterra equation for a named kernel, reports the log-ratio
// projection, and can sweep a YAML manifest of runs or benchmark the
// solver against kernels with closed form solutions.
package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	kexp "github.com/BRUTALLOLOL/kernel-experience-tools"
	"github.com/BRUTALLOLOL/kernel-experience-tools/bench"
	"github.com/BRUTALLOLOL/kernel-experience-tools/kernels"
	"github.com/BRUTALLOLOL/kernel-experience-tools/project"
	"github.com/BRUTALLOLOL/kernel-experience-tools/sweep"
	"github.com/BRUTALLOLOL/kernel-experience-tools/volterra"
)

var (
	kernel  = flag.String("kernel", "Exponential", "kernel to project (see -list)")
	list    = flag.Bool("list", false, "print available kernels and exit")
	tmax    = flag.Float64("tmax", 10, "time horizon")
	npoints = flag.Int("n", 1000, "number of grid points")
	x0      = flag.Float64("x0", 1, "initial condition")
	method  = flag.String("method", "trapezoidal", "quadrature rule: trapezoidal or simpson")
	lambda  = flag.Float64("lambda", 0.8, "projection base lambda")
	dbpath  = flag.String("db", "", "sqlite file recording runs (empty disables)")
	config  = flag.String("config", "", "YAML manifest of runs to sweep")
	workers = flag.Int("workers", 0, "concurrent solves in a sweep (0 means one per CPU)")
	suite   = flag.Bool("suite", false, "print solver accuracy against closed form solutions and exit")
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("kexp: ")
	flag.Parse()

	if *list {
		for _, k := range kernels.AllKernels {
			fmt.Println(kexp.Name(k))
		}
		return
	}
	if *suite {
		runSuite()
		return
	}

	var db *sql.DB
	if *dbpath != "" {
		var err error
		db, err = sql.Open("sqlite", *dbpath)
		if err != nil {
			log.Fatalf("open %v: %v", *dbpath, err)
		}
		defer db.Close()
	}

	if *config != "" {
		runSweep(db)
		return
	}
	runSingle(db)
}

func runSingle(db *sql.DB) {
	k, err := lookupKernel(*kernel)
	if err != nil {
		log.Fatal(err)
	}
	rule, err := volterra.ParseRule(strings.ToLower(*method))
	if err != nil {
		log.Fatal(err)
	}

	opts := []volterra.Option{volterra.X0(*x0), volterra.Method(rule)}
	if db != nil {
		opts = append(opts, volterra.DB(db))
	}

	start := time.Now()
	t, x, err := volterra.Solve(k, *tmax, *npoints, opts...)
	if err != nil {
		log.Fatal(err)
	}
	elapsed := time.Since(start)

	nvals, err := project.N(x, *x0, *lambda)
	if err != nil {
		log.Fatal(err)
	}

	// round trip the projection: x/x(0) against lambda^n
	norm := make([]float64, len(x))
	recon := make([]float64, len(x))
	loglam := math.Log(*lambda)
	for i := range x {
		norm[i] = x[i] / x[0]
		recon[i] = math.Exp(nvals[i] * loglam)
	}
	acc, err := project.Compare(norm, recon)
	if err != nil {
		log.Fatal(err)
	}

	last := len(t) - 1
	fmt.Printf("%v: %v points to t=%v, %v rule (%v)\n", kexp.Name(k), *npoints, *tmax, rule, elapsed.Round(time.Microsecond))
	fmt.Printf("    x(0) = %v, x(%v) = %.6f\n", x[0], t[last], x[last])
	fmt.Printf("    n(0) = %v, n(%v) = %.3f  (lambda = %v)\n", nvals[0], t[last], nvals[last], *lambda)
	fmt.Printf("    reconstruction: %.2f%% accurate, mean err %.3g, rmse %.3g\n", acc.Score*100, acc.MeanErr, acc.RMSE)
}

func runSweep(db *sql.DB) {
	runs, err := loadManifest(*config)
	if err != nil {
		log.Fatal(err)
	}

	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	opts := []sweep.Option{sweep.Logger(logger)}
	if db != nil {
		// the sqlite file can't take concurrent writers
		opts = append(opts, sweep.Solver(volterra.DB(db)), sweep.Workers(1))
	} else if *workers > 0 {
		opts = append(opts, sweep.Workers(*workers))
	}

	results, err := sweep.Do(context.Background(), runs, opts...)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("%-24v %8v %8v %12v %14v\n", "run", "n", "tmax", "x(final)", "elapsed")
	nfail := 0
	for _, res := range results {
		if res.Err != nil {
			nfail++
			fmt.Printf("%-24v failed: %v\n", res.Name, res.Err)
			continue
		}
		fmt.Printf("%-24v %8v %8v %12.6f %14v\n",
			res.Name, res.N, res.TMax, res.X[len(res.X)-1], res.Elapsed.Round(time.Microsecond))
	}
	if nfail > 0 {
		fmt.Printf("%v of %v runs failed\n", nfail, len(results))
		os.Exit(1)
	}
}

func runSuite() {
	grids := []int{101, 201, 401, 801}

	fmt.Println("max relative error against closed form solutions (trapezoid rule)")
	fmt.Printf("%-24v", "scenario")
	for _, n := range grids {
		fmt.Printf(" %12v", fmt.Sprintf("n=%v", n))
	}
	fmt.Println()

	for _, s := range bench.AllScenarios {
		fmt.Printf("%-24v", s.Name())
		for _, n := range grids {
			acc, err := bench.Run(s, n, volterra.Trapezoid)
			if err != nil {
				log.Fatal(err)
			}
			fmt.Printf(" %12.3e", acc.MaxErr)
		}
		fmt.Println()
	}
}
