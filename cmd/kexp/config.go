package main

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	kexp "github.com/BRUTALLOLOL/kernel-experience-tools"
	"github.com/BRUTALLOLOL/kernel-experience-tools/kernels"
	"github.com/BRUTALLOLOL/kernel-experience-tools/sweep"
	"github.com/BRUTALLOLOL/kernel-experience-tools/volterra"
)

// runSpec is one entry of a sweep manifest.  Omitted fields fall back to
// the single run defaults: tmax 10, n 1000, x0 1, trapezoid rule.
type runSpec struct {
	Name   string   `yaml:"name"`
	Kernel string   `yaml:"kernel"`
	TMax   float64  `yaml:"tmax"`
	N      int      `yaml:"n"`
	X0     *float64 `yaml:"x0"`
	Method string   `yaml:"method"`
}

type manifest struct {
	Runs []runSpec `yaml:"runs"`
}

func loadManifest(path string) ([]sweep.Run, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var m manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse %v: %w", path, err)
	}

	runs := make([]sweep.Run, 0, len(m.Runs))
	for i, rs := range m.Runs {
		k, err := lookupKernel(rs.Kernel)
		if err != nil {
			return nil, fmt.Errorf("run %v: %w", i, err)
		}

		rule := volterra.Trapezoid
		if rs.Method != "" {
			rule, err = volterra.ParseRule(strings.ToLower(rs.Method))
			if err != nil {
				return nil, fmt.Errorf("run %v: %w", i, err)
			}
		}

		r := sweep.Run{
			Name:   rs.Name,
			Kernel: k,
			TMax:   rs.TMax,
			N:      rs.N,
			X0:     1,
			Rule:   rule,
		}
		if r.Name == "" {
			r.Name = fmt.Sprintf("run%v-%v", i, kexp.Name(k))
		}
		if r.TMax == 0 {
			r.TMax = 10
		}
		if r.N == 0 {
			r.N = 1000
		}
		if rs.X0 != nil {
			r.X0 = *rs.X0
		}
		runs = append(runs, r)
	}
	return runs, nil
}

func lookupKernel(name string) (kexp.Kernel, error) {
	for _, k := range kernels.AllKernels {
		if strings.EqualFold(kexp.Name(k), name) {
			return k, nil
		}
	}
	return nil, fmt.Errorf("unknown kernel %q (see -list)", name)
}
