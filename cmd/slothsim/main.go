package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/sirupsen/logrus"
	"github.com/slothgame/sloth/level"
	"github.com/slothgame/sloth/physics/engine"
	"github.com/slothgame/sloth/ragdoll"
	"github.com/slothgame/sloth/sim"
)

func main() {
	backend := flag.String("backend", engine.Box2D, "Physics engine (box2d or chipmunk)")
	ticks := flag.Int("ticks", 600, "Number of fixed steps to run")
	tickRate := flag.Int("tickrate", 60, "Simulated steps per second")
	script := flag.String("script", "reach", "Player script (reach or swing)")
	spiderman := flag.Bool("spiderman", false, "Let hands grab thin air")
	rotate := flag.Bool("rotate", true, "Keep driving an arm while its hand holds on")
	verbose := flag.Bool("v", false, "Log hand state changes")
	flag.Parse()

	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if *verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	run, ok := sim.Scripts[*script]
	if !ok {
		log.Fatalf("Unknown script %q", *script)
	}
	if *tickRate <= 0 {
		log.Fatalf("Tick rate must be positive, got %d", *tickRate)
	}

	world, err := engine.New(*backend, engine.Options{Gravity: mgl64.Vec2{0, -10}}, log)
	if err != nil {
		log.Fatalf("Could not create world: %v", err)
	}
	defer world.Close()

	cfg := ragdoll.DefaultConfig()
	cfg.Grab.PermissiveGrab = *spiderman
	cfg.Grab.GrabbingHandCanRotate = *rotate

	s, err := sim.New(world, sim.Options{
		Sloth:    cfg,
		Skeleton: ragdoll.DefaultSkeleton(),
		Level:    level.Demo(),
		DT:       1 / float64(*tickRate),
		Script:   run,
	}, log)
	if err != nil {
		log.Fatalf("Could not build simulation: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.WithFields(logrus.Fields{"engine": *backend, "script": *script, "ticks": *ticks}).Info("Starting simulation")
	stats, err := s.Run(ctx, *ticks)
	if err != nil {
		log.WithError(err).Warn("Simulation stopped early")
	}
	log.WithFields(logrus.Fields{
		"ticks":      stats.Ticks,
		"leftGrabs":  stats.LeftGrabs,
		"rightGrabs": stats.RightGrabs,
		"grabErrors": stats.GrabErrors,
		"maxTorque":  stats.MaxTorque,
		"torsoX":     stats.Torso.X(),
		"torsoY":     stats.Torso.Y(),
	}).Info("Simulation finished")
}
